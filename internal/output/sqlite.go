// internal/output/sqlite.go
package output

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/civicdata/statement-go/pkg/types"
)

// SQLiteWriter writes records to a SQLite database, ignoring duplicate
// URLs.
type SQLiteWriter struct {
	db    *sql.DB
	table string
}

// NewSQLiteWriter opens (creating if needed) the database at path and
// ensures the target table exists.
func NewSQLiteWriter(path, table string) (*SQLiteWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is required")
	}
	if table == "" {
		table = "releases"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		source TEXT NOT NULL,
		url    TEXT NOT NULL UNIQUE,
		title  TEXT NOT NULL,
		date   TEXT,
		domain TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return &SQLiteWriter{db: db, table: table}, nil
}

// Write inserts the records in one transaction. Records whose URL is
// already present are skipped.
func (w *SQLiteWriter) Write(records []types.Record) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT OR IGNORE INTO %s (source, url, title, date, domain) VALUES (?, ?, ?, ?, ?)", w.table))
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
func (w *SQLiteWriter) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}

// nullableDate maps an absent date to SQL NULL instead of an empty
// string.
func nullableDate(r types.Record) interface{} {
	if r.Date == nil {
		return nil
	}
	return r.Date.String()
}
