// SPDX-License-Identifier: MIT

package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column with name and width.
// A zero Width sizes the column to its widest cell; a nil Style leaves
// cells unstyled.
type Column struct {
	Name  string
	Width int
	Align lipgloss.Position
	Style *lipgloss.Style
}

// Table provides styled table rendering.
type Table struct {
	columns   []Column
	rows      [][]string
	headerSep bool
	indent    string
}

// NewTable creates a new table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:   columns,
		headerSep: true,
		indent:    "  ",
	}
}

// SetIndent sets the left indent for the table.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// SetHeaderSeparator enables/disables the header separator line.
func (t *Table) SetHeaderSeparator(enabled bool) *Table {
	t.headerSep = enabled
	return t
}

// AddRow adds a row of values to the table. Missing cells render empty.
func (t *Table) AddRow(values ...string) *Table {
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	t.rows = append(t.rows, values)
	return t
}

// Render returns the formatted table string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := t.widths()

	var sb strings.Builder
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = lipgloss.PlaceHorizontal(widths[i], col.Align, Bold.Render(col.Name))
	}
	t.writeLine(&sb, cells)

	if t.headerSep {
		total := len(widths) - 1
		for _, w := range widths {
			total += w
		}
		sb.WriteString(t.indent)
		sb.WriteString(Dim.Render(strings.Repeat("─", total)))
		sb.WriteString("\n")
	}

	for _, row := range t.rows {
		for i, col := range t.columns {
			val := row[i]
			if lipgloss.Width(val) > widths[i] && widths[i] > 3 {
				val = truncate(val, widths[i]-3) + "..."
			}
			if col.Style != nil {
				val = col.Style.Render(val)
			}
			cells[i] = lipgloss.PlaceHorizontal(widths[i], col.Align, val)
		}
		t.writeLine(&sb, cells)
	}

	return sb.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		widths[i] = lipgloss.Width(col.Name)
		for _, row := range t.rows {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) writeLine(sb *strings.Builder, cells []string) {
	sb.WriteString(t.indent)
	sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	sb.WriteString("\n")
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
