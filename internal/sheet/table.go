package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// Column names the import sheet must carry in its header row.
const (
	ColumnTitle   = "Title"
	ColumnISBN    = "ISBN"
	ColumnAuthors = "Authors"
)

var (
	ErrEmptySheet    = errors.New("sheet has no header row")
	ErrMissingColumn = errors.New("required column missing from header")
)

// Table is a whole sheet held in memory. Header maps a column name to its
// index; Rows holds the records below the header in sheet order.
type Table struct {
	Header map[string]int
	Rows   [][]string
}

// Columns locates the import columns in a header.
type Columns struct {
	Title   int
	ISBN    int
	Authors int
}

func NewTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}
	return &Table{Header: header, Rows: rows[1:]}, nil
}

// Columns resolves Title, ISBN and Authors by name. The order of the columns
// in the sheet does not matter.
func (t *Table) Columns() (Columns, error) {
	var missing []string
	lookup := func(name string) int {
		i, ok := t.Header[name]
		if !ok {
			missing = append(missing, name)
		}
		return i
	}
	cols := Columns{
		Title:   lookup(ColumnTitle),
		ISBN:    lookup(ColumnISBN),
		Authors: lookup(ColumnAuthors),
	}
	if len(missing) > 0 {
		return Columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// SheetRow converts an index into Rows to the 1-based row number shown by
// spreadsheet applications.
func SheetRow(i int) int {
	return i + 2
}

// IsBlank reports whether every cell of a row is empty or whitespace.
func IsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
