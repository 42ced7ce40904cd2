// internal/output/output_test.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/civicdata/statement-go/internal/config"
	"github.com/civicdata/statement-go/pkg/types"
)

func sampleRecords() []types.Record {
	d := types.NewDate(2024, time.January, 15)
	return []types.Record{
		{
			Source: "https://example.gov/press?page=1",
			URL:    "https://example.gov/press/r1",
			Title:  "First Release",
			Date:   &d,
			Domain: "example.gov",
		},
		{
			Source: "https://example.gov/press?page=1",
			URL:    "https://example.gov/press/r2",
			Title:  "Undated Release",
			Domain: "example.gov",
		},
	}
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(sampleRecords()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []types.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d records", len(got))
	}
	if got[0].DateString() != "2024-01-15" {
		t.Errorf("date = %q", got[0].DateString())
	}
	if got[1].Date != nil {
		t.Errorf("undated record should round-trip as null, got %v", got[1].Date)
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	// Two batches: the header must only appear once.
	records := sampleRecords()
	if err := w.Write(records[:1]); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(records[1:]); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if rows[0][0] != "source" || rows[0][3] != "date" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][3] != "2024-01-15" {
		t.Errorf("dated row date column = %q", rows[1][3])
	}
	if rows[2][3] != "" {
		t.Errorf("undated row date column = %q", rows[2][3])
	}
}

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")

	w, err := NewSQLiteWriter(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(sampleRecords()); err != nil {
		t.Fatal(err)
	}
	// Re-writing the same batch must not duplicate rows.
	if err := w.Write(sampleRecords()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
}

func TestNewWriterSelection(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		format string
		file   string
	}{
		{"json", "out.json"},
		{"csv", "out.csv"},
		{"excel", "out.xlsx"},
	}
	for _, tt := range tests {
		w, err := NewWriter(config.OutputConfig{Format: tt.format, File: filepath.Join(dir, tt.file)})
		if err != nil {
			t.Errorf("NewWriter(%s): %v", tt.format, err)
			continue
		}
		w.Close()
	}

	if _, err := NewWriter(config.OutputConfig{Format: "parquet"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
