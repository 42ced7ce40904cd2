// internal/output/csv.go
package output

import (
	"encoding/csv"
	"os"

	"github.com/civicdata/statement-go/pkg/types"
)

// CSVWriter writes records as CSV with a header row.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	wrote  bool
}

// NewCSVWriter creates a CSV writer over the given file path.
func NewCSVWriter(filename string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{file: file, writer: csv.NewWriter(file)}, nil
}

// Write appends records, emitting the header before the first batch.
func (w *CSVWriter) Write(records []types.Record) error {
	if !w.wrote {
		if err := w.writer.Write(columns); err != nil {
			return err
		}
		w.wrote = true
	}
	for _, r := range records {
		if err := w.writer.Write(row(r)); err != nil {
			return err
		}
	}
	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the underlying file.
func (w *CSVWriter) Close() error {
	if w.file == nil {
		return nil
	}
	w.writer.Flush()
	err := w.file.Close()
	w.file = nil
	if flushErr := w.writer.Error(); flushErr != nil {
		return flushErr
	}
	return err
}
