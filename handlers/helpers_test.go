package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderIndex(t *testing.T) {
	index := headerIndex([]string{" Store_Name ", "DATE", "", "date", "item"})

	assert.Equal(t, 0, index["store_name"])
	assert.Equal(t, 1, index["date"]) // first occurrence wins
	assert.Equal(t, 4, index["item"])
	_, ok := index[""]
	assert.False(t, ok)
}

func TestCellAt(t *testing.T) {
	row := []string{" a ", "b"}

	assert.Equal(t, "a", cellAt(row, 0))
	assert.Equal(t, "b", cellAt(row, 1))
	assert.Equal(t, "", cellAt(row, 2)) // short rows are common in xlsx
	assert.Equal(t, "", cellAt(row, -1))
}
