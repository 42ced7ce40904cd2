// internal/output/excel.go
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/civicdata/statement-go/pkg/types"
)

// ExcelWriter writes records to an XLSX workbook with one releases
// sheet.
type ExcelWriter struct {
	filename string
	file     *excelize.File
	sheet    string
	nextRow  int
}

// NewExcelWriter creates a workbook at the given path.
func NewExcelWriter(filename string) (*ExcelWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("excel file path is required")
	}

	f := excelize.NewFile()
	const sheet = "Releases"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	w := &ExcelWriter{filename: filename, file: f, sheet: sheet, nextRow: 1}
	if err := w.writeRow(columns); err != nil {
		return nil, err
	}
	return w, nil
}

// Write appends one row per record.
func (w *ExcelWriter) Write(records []types.Record) error {
	for _, r := range records {
		if err := w.writeRow(row(r)); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writeRow(values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, w.nextRow)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := w.file.SetCellValue(w.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	w.nextRow++
	return nil
}

// Close saves the workbook and releases its resources.
func (w *ExcelWriter) Close() error {
	if w.file == nil {
		return nil
	}
	saveErr := w.file.SaveAs(w.filename)
	closeErr := w.file.Close()
	w.file = nil
	if saveErr != nil {
		return fmt.Errorf("failed to save workbook: %w", saveErr)
	}
	return closeErr
}
