package typetab

// column.go provides column-oriented views over a table. A Col is an
// ephemeral projection: it copies cell values out of the table and holds
// no reference back to it.

import "strings"

// Col is a single column of a table: its inferred type, its name in
// original case, and its cells in row order.
type Col struct {
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Column returns the first column whose name matches, compared
// case-insensitively. It returns a NotFoundError when no column matches.
func Column(t Table, name string) (Col, error) {
	for i, n := range t.names {
		if strings.EqualFold(n, name) {
			return colAt(t, i), nil
		}
	}
	return Col{}, NotFoundError{Name: name}
}

// Columns returns every column of the table, in declared name order.
func Columns(t Table) []Col {
	cols := make([]Col, len(t.names))
	for i := range t.names {
		cols[i] = colAt(t, i)
	}
	return cols
}

// colAt copies column i out of the table.
func colAt(t Table, i int) Col {
	cells := make([]Cell, len(t.rows))
	for r, row := range t.rows {
		cells[r] = row[i]
	}
	return Col{Type: t.types[t.names[i]], Name: t.names[i], Cells: cells}
}

// Frequencies counts the occurrences of each distinct cell value in the
// column, in a single linear scan. Null is a valid key. The counts always
// sum to len(col.Cells); the returned map carries no ordering.
func Frequencies(col Col) map[Cell]int {
	freq := make(map[Cell]int)
	for _, cell := range col.Cells {
		freq[cell]++
	}
	return freq
}
