package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows as space aligned columns without borders.
// Cell widths ignore ANSI styling, so styled cells line up.
type Table struct {
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a table with cols columns.
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// AddRow adds a row. Extra cells are dropped, missing cells are empty.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))

	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]

		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}

	t.rows = append(t.rows, row)
}

// String renders the table. The last column is never padded.
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder

	padding := strings.Repeat(" ", t.colPadding)

	for _, row := range t.rows {
		line := ""

		for i, cell := range row {
			if i > 0 {
				line += padding
			}

			line += cell

			if i < len(row)-1 {
				line += strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell))
			}
		}

		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}

	return sb.String()
}
