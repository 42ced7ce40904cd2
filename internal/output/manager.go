// internal/output/manager.go
package output

import (
	"fmt"

	"github.com/civicdata/statement-go/internal/config"
)

// NewWriter builds the writer selected by the output configuration.
func NewWriter(cfg config.OutputConfig) (Writer, error) {
	switch Format(cfg.Format) {
	case FormatJSON:
		return NewJSONWriter(cfg.File)
	case FormatCSV:
		return NewCSVWriter(cfg.File)
	case FormatSQLite:
		return NewSQLiteWriter(cfg.File, cfg.Table)
	case FormatPostgreSQL:
		return NewPostgreSQLWriter(cfg.DSN, cfg.Table)
	case FormatMySQL:
		return NewMySQLWriter(cfg.DSN, cfg.Table)
	case FormatMongoDB:
		return NewMongoDBWriter(cfg.DSN, "", cfg.Table)
	case FormatExcel:
		return NewExcelWriter(cfg.File)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
}
