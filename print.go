package typetab

// print.go renders a table as padded plain text with type-annotated
// headers, for inspection in terminals and logs.

import (
	"fmt"
	"io"
	"strings"
)

const printPadding = 2

// Fprint writes the table to w in a padded tabular layout. Each header is
// annotated with the column's type, e.g. "amount (float)", and null cells
// render as NULL:
//
//	name (str)  amount (float)
//	--------------------------
//	widget      2.5
//	NULL        10
func Fprint(w io.Writer, t Table) error {
	headers := make([]string, len(t.names))
	widths := make([]int, len(t.names))
	for i, name := range t.names {
		headers[i] = fmt.Sprintf("%s (%s)", name, t.types[name])
		widths[i] = len(headers[i])
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := len(cell.String()); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, s := range cells {
			b.WriteString(s)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(s)+printPadding))
			}
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	rule := 0
	for _, width := range widths {
		rule += width + printPadding
	}
	b.WriteString(strings.Repeat("-", rule))
	b.WriteByte('\n')

	cells := make([]string, len(t.names))
	for _, row := range t.rows {
		for i, cell := range row {
			cells[i] = cell.String()
		}
		writeRow(cells)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Sprint returns the Fprint rendering of the table as a string.
func Sprint(t Table) string {
	var b strings.Builder
	Fprint(&b, t)
	return b.String()
}
