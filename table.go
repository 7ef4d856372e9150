package typetab

// table.go defines the Table value and its construction paths.
//
// A Table is immutable by convention: no operation in this package ever
// mutates one in place, and every transform returns a new Table. Transforms
// may share name and type structures between input and output because
// nothing writes to them after construction.

import (
	"fmt"
	"strings"
)

// Table bundles ordered column names, one inferred type per name, and
// typed rows. Every row has exactly len(names) cells; New enforces this
// and every operation in the package preserves it.
type Table struct {
	names []string
	types map[string]Type
	rows  [][]Cell
}

// New builds a Table from its three parts. It returns a ShapeError when
// any row's length differs from len(names), and an error when a name has
// no type entry. The inputs are retained, not copied; callers must not
// modify them afterwards.
func New(names []string, types map[string]Type, rows [][]Cell) (Table, error) {
	for i, row := range rows {
		if len(row) != len(names) {
			return Table{}, ShapeError{Row: i, Want: len(names), Got: len(row)}
		}
	}
	for _, name := range names {
		if _, ok := types[name]; !ok {
			return Table{}, fmt.Errorf("column %q has no type entry", name)
		}
	}
	if types == nil {
		types = map[string]Type{}
	}
	return Table{names: names, types: types, rows: rows}, nil
}

// FromStrings builds a fully typed Table from the raw output of a loader:
// ordered column names and a grid of raw string cells. Cells are
// whitespace-trimmed, column types are inferred, and every cell is cast to
// its column's type. A row whose length differs from len(names) fails the
// whole call with a ShapeError; no partial table is returned.
func FromStrings(names []string, raw [][]string) (Table, error) {
	trimmed := make([][]string, len(raw))
	for i, rec := range raw {
		if len(rec) != len(names) {
			return Table{}, ShapeError{Row: i, Want: len(names), Got: len(rec)}
		}
		row := make([]string, len(rec))
		for j, s := range rec {
			row[j] = strings.TrimSpace(s)
		}
		trimmed[i] = row
	}

	rows := make([][]Cell, len(trimmed))
	for i, rec := range trimmed {
		cells := make([]Cell, len(rec))
		for j, s := range rec {
			cells[j] = StrCell(s)
		}
		rows[i] = cells
	}

	t, err := New(names, InferTypes(names, trimmed), rows)
	if err != nil {
		return Table{}, err
	}
	return Cast(t), nil
}

// Names returns the ordered column names. The slice is shared with the
// table and must not be modified.
func (t Table) Names() []string { return t.names }

// Types returns the column name to type mapping. The map is shared with
// the table and must not be modified.
func (t Table) Types() map[string]Type { return t.types }

// Rows returns the typed rows. The slices are shared with the table and
// must not be modified.
func (t Table) Rows() [][]Cell { return t.rows }

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t Table) Width() int { return len(t.names) }

// TypeOf returns the inferred type of the named column (exact match).
// Unknown names report TypeNone.
func (t Table) TypeOf(name string) Type { return t.types[name] }
