// internal/output/mysql.go
package output

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/civicdata/statement-go/pkg/types"
)

// MySQLWriter writes records to a MySQL table, ignoring duplicate URLs.
type MySQLWriter struct {
	db    *sql.DB
	table string
}

// NewMySQLWriter connects with the given DSN and ensures the target
// table exists.
func NewMySQLWriter(dsn, table string) (*MySQLWriter, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql dsn is required")
	}
	if table == "" {
		table = "releases"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	// URL column length is bounded so it can carry a unique index.
	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		source VARCHAR(2048) NOT NULL,
		url    VARCHAR(768)  NOT NULL,
		title  TEXT          NOT NULL,
		date   DATE          NULL,
		domain VARCHAR(255)  NOT NULL,
		UNIQUE KEY url_unique (url)
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &MySQLWriter{db: db, table: table}, nil
}

// Write inserts the records in one transaction with INSERT IGNORE.
func (w *MySQLWriter) Write(records []types.Record) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT IGNORE INTO %s (source, url, title, date, domain) VALUES (?, ?, ?, ?, ?)", w.table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Source, r.URL, r.Title, nullableDate(r), r.Domain); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record %s: %w", r.URL, err)
		}
	}
	return tx.Commit()
}

// Close closes the database handle.
func (w *MySQLWriter) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}
