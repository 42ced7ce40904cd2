// internal/output/types.go

// Package output persists scraped records. The record schema is fixed
// at five fields, so every writer shares one column list instead of
// deriving it from the data.
package output

import "github.com/civicdata/statement-go/pkg/types"

// Format identifies a supported output format.
type Format string

const (
	FormatJSON       Format = "json"
	FormatCSV        Format = "csv"
	FormatSQLite     Format = "sqlite"
	FormatPostgreSQL Format = "postgresql"
	FormatMySQL      Format = "mysql"
	FormatMongoDB    Format = "mongodb"
	FormatExcel      Format = "excel"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatSQLite, FormatPostgreSQL, FormatMySQL, FormatMongoDB, FormatExcel}
}

// Writer persists a batch of records. Writers are not safe for
// concurrent use; the CLI and server hold one writer per destination.
type Writer interface {
	Write(records []types.Record) error
	Close() error
}

// columns is the record schema in output order, shared by the tabular
// writers.
var columns = []string{"source", "url", "title", "date", "domain"}

// row flattens a record into the column order. The date column is
// YYYY-MM-DD or empty.
func row(r types.Record) []string {
	return []string{r.Source, r.URL, r.Title, r.DateString(), r.Domain}
}
