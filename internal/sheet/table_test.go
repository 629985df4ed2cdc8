package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("empty sheet", func(t *testing.T) {
		_, err := NewTable(nil)
		assert.ErrorIs(t, err, ErrEmptySheet)
	})

	t.Run("header only", func(t *testing.T) {
		table, err := NewTable([][]string{{"Title", "ISBN", "Authors"}})
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
	})

	t.Run("first duplicate header wins", func(t *testing.T) {
		table, err := NewTable([][]string{{"Title", "Title"}})
		require.NoError(t, err)
		assert.Equal(t, 0, table.Header["Title"])
	})
}

func TestTable_Columns(t *testing.T) {
	t.Run("any order", func(t *testing.T) {
		table, err := NewTable([][]string{{"Authors", "Year", " ISBN ", "Title"}})
		require.NoError(t, err)

		cols, err := table.Columns()
		require.NoError(t, err)
		assert.Equal(t, Columns{Title: 3, ISBN: 2, Authors: 0}, cols)
	})

	t.Run("missing columns are named", func(t *testing.T) {
		table, err := NewTable([][]string{{"Title"}})
		require.NoError(t, err)

		_, err = table.Columns()
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "ISBN, Authors")
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank([]string{"", "  "}))
	assert.False(t, IsBlank([]string{"", "x"}))
}

func TestSheetRow(t *testing.T) {
	assert.Equal(t, 2, SheetRow(0))
}
