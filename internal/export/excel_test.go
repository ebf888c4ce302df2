package export

import (
	"fmt"
	"testing"

	"pulse-backend/internal/models"
	"pulse-backend/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookLayout(t *testing.T) {
	rows := []stats.ExportRow{
		{
			Name:       "Alice",
			Email:      "alice@co.com",
			Department: "HR",
			Comments:   "all good",
			Answers:    map[int]int{1: 5, 2: 3},
		},
		{
			Name:       "Bob",
			Email:      "bob@co.com",
			Department: "Safety",
			Answers:    map[int]int{1: 4},
		},
	}

	f, err := Workbook(rows, models.Questions)
	require.NoError(t, err)

	cell := func(ref string) string {
		v, err := f.GetCellValue(SheetName, ref)
		require.NoError(t, err)
		return v
	}

	// Fixed header columns
	assert.Equal(t, "Name", cell("A1"))
	assert.Equal(t, "Email", cell("B1"))
	assert.Equal(t, "Department", cell("C1"))
	assert.Equal(t, "Comments", cell("D1"))

	// Only answered questions become columns, labeled with id and text
	assert.Equal(t, fmt.Sprintf("Q1 - %s", models.Questions[0].Text), cell("E1"))
	assert.Equal(t, fmt.Sprintf("Q2 - %s", models.Questions[1].Text), cell("F1"))
	assert.Equal(t, "", cell("G1"))

	// One data row per record
	assert.Equal(t, "Alice", cell("A2"))
	assert.Equal(t, "all good", cell("D2"))
	assert.Equal(t, "5", cell("E2"))
	assert.Equal(t, "3", cell("F2"))

	assert.Equal(t, "Bob", cell("A3"))
	assert.Equal(t, "4", cell("E3"))
	// Bob never answered Q2: blank cell, not zero
	assert.Equal(t, "", cell("F3"))
}

func TestWorkbookNoRows(t *testing.T) {
	f, err := Workbook(nil, models.Questions)
	require.NoError(t, err)

	v, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", v)

	// No answers anywhere, so no question columns at all
	v, err = f.GetCellValue(SheetName, "E1")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
