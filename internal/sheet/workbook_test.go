package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w, err := NewWriter()
	require.NoError(t, err)
	require.NoError(t, w.AddSheet("Books", []string{"ID", "Title"}, [][]any{
		{int64(1), "Go"},
		{int64(2), "Rust"},
	}))
	require.NoError(t, w.AddSheet("Authors", []string{"ID", "Name"}, nil))
	require.NoError(t, w.SaveAs(path))
	require.NoError(t, w.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Books", "Authors"}, f.GetSheetList())

	rows, err := f.GetRows("Books")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ID", "Title"}, {"1", "Go"}, {"2", "Rust"}}, rows)

	styleID, err := f.GetCellStyle("Books", "B1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "center", style.Alignment.Horizontal)

	width, err := f.GetColWidth("Books", "A")
	require.NoError(t, err)
	assert.InDelta(t, narrowColumnWidth, width, 0.01)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"ISBN", "Title", "Authors"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"ISBN13: 1", "One", "A, B"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]string{"ISBN13: 2", "Two", "C"}))
	_, err := f.NewSheet("Ignored")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadFile(path)
	require.NoError(t, err)

	cols, err := table.Columns()
	require.NoError(t, err)
	assert.Equal(t, Columns{Title: 1, ISBN: 0, Authors: 2}, cols)
	require.Len(t, table.Rows, 3)
	assert.True(t, IsBlank(table.Rows[1]))
	assert.Equal(t, "Two", table.Rows[2][1])
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
