// internal/output/json.go
package output

import (
	"encoding/json"
	"os"

	"github.com/civicdata/statement-go/pkg/types"
)

// JSONWriter writes records as an indented JSON array.
type JSONWriter struct {
	filename string
	file     *os.File
}

// NewJSONWriter creates a JSON writer over the given file path.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &JSONWriter{filename: filename, file: file}, nil
}

// Write encodes the records to the file.
func (w *JSONWriter) Write(records []types.Record) error {
	encoder := json.NewEncoder(w.file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// Close closes the underlying file.
func (w *JSONWriter) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
