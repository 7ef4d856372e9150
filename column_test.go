package typetab

import (
	"errors"
	"reflect"
	"testing"
)

func cityTable(t *testing.T) Table {
	t.Helper()
	tbl, err := FromStrings([]string{"City", "Pop"}, [][]string{
		{"oslo", "2"},
		{"bergen", "1"},
		{"oslo", "3"},
		{"", "1"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	return tbl
}

func TestColumnCaseInsensitive(t *testing.T) {
	tbl := cityTable(t)

	for _, name := range []string{"City", "city", "CITY"} {
		col, err := Column(tbl, name)
		if err != nil {
			t.Fatalf("Column(%q): %v", name, err)
		}
		// The resolved name keeps its original case.
		if col.Name != "City" {
			t.Errorf("Column(%q).Name = %q, want %q", name, col.Name, "City")
		}
		if col.Type != TypeStr {
			t.Errorf("Column(%q).Type = %v, want str", name, col.Type)
		}
		want := []Cell{StrCell("oslo"), StrCell("bergen"), StrCell("oslo"), Null}
		if !reflect.DeepEqual(col.Cells, want) {
			t.Errorf("Column(%q).Cells = %v, want %v", name, col.Cells, want)
		}
	}
}

func TestColumnNotFound(t *testing.T) {
	_, err := Column(cityTable(t), "nope")

	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFound.Name != "nope" {
		t.Errorf("NotFoundError.Name = %q, want %q", notFound.Name, "nope")
	}
}

func TestColumnFirstMatchWins(t *testing.T) {
	tbl, err := FromStrings([]string{"a", "A"}, [][]string{{"1", "x"}})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	col, err := Column(tbl, "A")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col.Name != "a" {
		t.Errorf("first match = %q, want %q", col.Name, "a")
	}
}

func TestColumnsOrder(t *testing.T) {
	cols := Columns(cityTable(t))
	if len(cols) != 2 || cols[0].Name != "City" || cols[1].Name != "Pop" {
		t.Errorf("Columns order = %v", cols)
	}
	if cols[1].Type != TypeInt {
		t.Errorf("Pop type = %v, want int", cols[1].Type)
	}
}

// ----------------------------------------------------------------------------
// Frequencies Tests
// ----------------------------------------------------------------------------

func TestFrequencies(t *testing.T) {
	tbl := cityTable(t)
	col, err := Column(tbl, "city")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}

	got := Frequencies(col)
	want := map[Cell]int{
		StrCell("oslo"):   2,
		StrCell("bergen"): 1,
		Null:              1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequencies = %v, want %v", got, want)
	}
}

func TestFrequenciesSumLaw(t *testing.T) {
	tbl := cityTable(t)
	for _, col := range Columns(tbl) {
		sum := 0
		for _, count := range Frequencies(col) {
			sum += count
		}
		if sum != tbl.Len() {
			t.Errorf("column %q: frequency sum = %d, want %d", col.Name, sum, tbl.Len())
		}
	}
}
