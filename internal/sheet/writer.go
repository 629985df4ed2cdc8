package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column widths in characters. Identifier columns are narrow, the rest wide.
const (
	narrowColumnWidth = 2500.0 / 256
	wideColumnWidth   = 10000.0 / 256
)

const defaultSheet = "Sheet1"

// Writer builds a workbook sheet by sheet. The first sheet added replaces the
// default empty sheet of a new workbook.
type Writer struct {
	file        *excelize.File
	headerStyle int
	sheets      int
}

func NewWriter() (*Writer, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	return &Writer{file: f, headerStyle: style}, nil
}

// AddSheet writes a header row followed by rows, one cell per value.
func (w *Writer) AddSheet(name string, headers []string, rows [][]any) error {
	if w.sheets == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("name sheet %q: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.sheets++

	if err := w.writeHeader(name, headers); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}

func (w *Writer) writeHeader(name string, headers []string) error {
	if len(headers) == 0 {
		return nil
	}
	if err := w.file.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(name, "A1", last, w.headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", name, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := w.file.SetColWidth(name, "A", lastCol, wideColumnWidth); err != nil {
		return err
	}
	return w.file.SetColWidth(name, "A", "A", narrowColumnWidth)
}

// SaveAs writes the workbook to path.
func (w *Writer) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.file.Close()
}
