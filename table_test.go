package typetab

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewShapeError(t *testing.T) {
	rows := [][]Cell{
		{IntCell(1), IntCell(2)},
		{IntCell(1), IntCell(2), IntCell(3)},
	}
	_, err := New([]string{"a", "b"}, map[string]Type{"a": TypeInt, "b": TypeInt}, rows)

	var shape ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("New error = %v, want ShapeError", err)
	}
	if shape.Row != 1 || shape.Want != 2 || shape.Got != 3 {
		t.Errorf("ShapeError = %+v, want {Row:1 Want:2 Got:3}", shape)
	}
}

func TestNewMissingTypeEntry(t *testing.T) {
	_, err := New([]string{"a"}, map[string]Type{}, nil)
	if err == nil {
		t.Fatal("New accepted a name with no type entry")
	}
}

func TestFromStringsEndToEnd(t *testing.T) {
	// Load, infer, cast, then substitute missing ints with zero.
	tbl, err := FromStrings([]string{"n", "s"}, [][]string{
		{"1", "a"},
		{"2", "b"},
		{"", "c"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}

	if got := tbl.TypeOf("n"); got != TypeInt {
		t.Errorf("type of n = %v, want int", got)
	}
	if got := tbl.TypeOf("s"); got != TypeStr {
		t.Errorf("type of s = %v, want str", got)
	}

	wantRows := [][]Cell{
		{IntCell(1), StrCell("a")},
		{IntCell(2), StrCell("b")},
		{Null, StrCell("c")},
	}
	if !reflect.DeepEqual(tbl.Rows(), wantRows) {
		t.Fatalf("rows = %v, want %v", tbl.Rows(), wantRows)
	}

	filled := ConvertMissingCells(tbl, Defaults{Int: 0})
	if filled.Rows()[2][0] != IntCell(0) {
		t.Errorf("missing int = %v, want 0", filled.Rows()[2][0])
	}
}

func TestFromStringsShapeError(t *testing.T) {
	_, err := FromStrings([]string{"a", "b"}, [][]string{
		{"1", "2"},
		{"1", "2", "3"},
	})

	var shape ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("error = %v, want ShapeError", err)
	}
	if shape.Row != 1 {
		t.Errorf("ShapeError.Row = %d, want 1", shape.Row)
	}
}

func TestFromStringsTrims(t *testing.T) {
	tbl, err := FromStrings([]string{"n", "s"}, [][]string{
		{"  1  ", "\thello "},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if tbl.TypeOf("n") != TypeInt {
		t.Errorf("padded integer inferred as %v, want int", tbl.TypeOf("n"))
	}
	if tbl.Rows()[0][1] != StrCell("hello") {
		t.Errorf("cell = %q, want %q", tbl.Rows()[0][1].Str(), "hello")
	}
}

func TestRectangularityPreserved(t *testing.T) {
	tbl, err := FromStrings([]string{"a", "b"}, [][]string{
		{"1", "x"},
		{"", "y"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}

	transforms := map[string]Table{
		"cast":    Cast(tbl),
		"names":   MapNames(tbl, func(_ Type, _ int, name string) string { return name + "2" }),
		"data":    MapData(tbl, func(_ Type, _ string, _, _ int, c Cell) Cell { return c }),
		"missing": ConvertMissingCells(tbl, Defaults{}),
		"types":   ConvertTypes(tbl, TypeFuncs{}),
		"columns": ConvertColumns(tbl, nil),
	}
	for name, got := range transforms {
		for i, row := range got.Rows() {
			if len(row) != got.Width() {
				t.Errorf("%s: row %d has %d cells, want %d", name, i, len(row), got.Width())
			}
		}
	}
}
