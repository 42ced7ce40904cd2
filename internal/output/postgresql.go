// internal/output/postgresql.go
package output

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/civicdata/statement-go/pkg/types"
)

// PostgreSQLWriter writes records to a PostgreSQL table, ignoring
// duplicate URLs.
type PostgreSQLWriter struct {
	db    *sql.DB
	table string
}

// NewPostgreSQLWriter connects with the given DSN and ensures the
// target table exists.
func NewPostgreSQLWriter(dsn, table string) (*PostgreSQLWriter, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgresql dsn is required")
	}
	if table == "" {
		table = "releases"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgresql connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgresql: %w", err)
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		source TEXT NOT NULL,
		url    TEXT NOT NULL UNIQUE,
		title  TEXT NOT NULL,
		date   DATE,
		domain TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &PostgreSQLWriter{db: db, table: table}, nil
}

// Write inserts the records in one transaction with ON CONFLICT DO
// NOTHING on the URL.
func (w *PostgreSQLWriter) Write(records []types.Record) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (source, url, title, date, domain) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (url) DO NOTHING", w.table))
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
func (w *PostgreSQLWriter) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}
