package typetab

// errors.go defines the error types surfaced by loading and lookups.
//
// Only two conditions are errors: a row whose length disagrees with the
// header (ShapeError, fatal to the whole load) and a column lookup with no
// match (NotFoundError, fatal to that call only). Malformed numeric data is
// never an error; it is how a cell gets classified as str. Internal
// consistency failures, such as an unrecognized Type reaching a dispatch
// site, are bugs and panic instead.

import "fmt"

// ShapeError reports a row whose cell count disagrees with the established
// column count. The load that produced it returns no partial table.
type ShapeError struct {
	Row  int // index of the offending data row
	Want int // expected cell count, the length of the column name list
	Got  int // actual cell count of the offending row
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// NotFoundError reports a column name that matched no column, even
// case-insensitively.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no column named %q", e.Name)
}

// invariant panics with a consistent prefix. It marks states that valid
// tables built by this package can never reach.
func invariant(format string, args ...any) {
	panic("typetab: invariant violation: " + fmt.Sprintf(format, args...))
}
