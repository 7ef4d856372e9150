package typetab

import (
	"strings"
	"testing"
)

func TestSprint(t *testing.T) {
	tbl, err := FromStrings([]string{"n", "s"}, [][]string{
		{"1", "a"},
		{"", "c"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}

	want := strings.Join([]string{
		"n (int)  s (str)",
		"------------------",
		"1        a",
		"NULL     c",
		"",
	}, "\n")
	if got := Sprint(tbl); got != want {
		t.Errorf("Sprint =\n%q\nwant\n%q", got, want)
	}
}

func TestSprintNoRows(t *testing.T) {
	tbl, err := FromStrings([]string{"a"}, nil)
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	got := Sprint(tbl)
	if !strings.HasPrefix(got, "a (None)\n") {
		t.Errorf("Sprint = %q", got)
	}
}
