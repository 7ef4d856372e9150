package typetab

// transform.go provides the two transform primitives, MapNames and
// MapData, and the higher-level converters built on MapData. All of them
// are pure: the input table is never touched and an independent table is
// returned, atomically.

// MapNames applies f to every column header and returns a new Table with
// the replaced names. f receives the column's type, index and current
// name. Rows and per-column types are untouched; the type mapping is
// rekeyed so renamed columns keep their types.
func MapNames(t Table, f func(typ Type, index int, name string) string) Table {
	names := make([]string, len(t.names))
	types := make(map[string]Type, len(t.names))
	for i, name := range t.names {
		typ := t.types[name]
		names[i] = f(typ, i, name)
		types[names[i]] = typ
	}
	return Table{names: names, types: types, rows: t.rows}
}

// MapData applies f to every cell and returns a new Table with the
// replaced rows. f receives the column's type and name, the row and
// column indices, and the current cell. Names and types are untouched and
// the shape is preserved.
func MapData(t Table, f func(typ Type, name string, row, col int, cell Cell) Cell) Table {
	rows := make([][]Cell, len(t.rows))
	for r, row := range t.rows {
		next := make([]Cell, len(row))
		for c, cell := range row {
			name := t.names[c]
			next[c] = f(t.types[name], name, r, c, cell)
		}
		rows[r] = next
	}
	return Table{names: t.names, types: t.types, rows: rows}
}

// Defaults holds the per-type replacement values used by
// ConvertMissingCells.
type Defaults struct {
	Str   string
	Int   int64
	Float float64
}

// ConvertMissingCells replaces every null cell with the default value for
// its column's type. Null cells in TypeNone columns stay null: a column
// with no known type has no meaningful default.
//
// Working with nulls is deliberate everywhere else in this package;
// replacing them is an explicit assumption about the data, so it only
// happens through this call.
func ConvertMissingCells(t Table, d Defaults) Table {
	return MapData(t, func(typ Type, name string, r, c int, cell Cell) Cell {
		if !cell.IsNull() || typ == TypeNone {
			return cell
		}
		switch typ {
		case TypeStr:
			return StrCell(d.Str)
		case TypeInt:
			return IntCell(d.Int)
		case TypeFloat:
			return FloatCell(d.Float)
		}
		invariant("unrecognized column type %d", typ)
		return cell
	})
}

// ConvertColumns applies per-column converter functions. Every cell whose
// column name has an entry in fns is replaced by fns[name](cell); other
// cells pass through. Name matching is exact and case-sensitive, unlike
// the case-insensitive lookup of Column.
func ConvertColumns(t Table, fns map[string]func(Cell) Cell) Table {
	return MapData(t, func(typ Type, name string, r, c int, cell Cell) Cell {
		if fn, ok := fns[name]; ok {
			return fn(cell)
		}
		return cell
	})
}

// TypeFuncs holds optional per-type converter functions for ConvertTypes.
// A nil function leaves cells of that type unchanged.
type TypeFuncs struct {
	Str   func(Cell) Cell
	Int   func(Cell) Cell
	Float func(Cell) Cell
}

// ConvertTypes applies a converter to every cell whose column has the
// matching type. Cells in TypeNone columns are never transformed.
func ConvertTypes(t Table, fns TypeFuncs) Table {
	return MapData(t, func(typ Type, name string, r, c int, cell Cell) Cell {
		switch {
		case typ == TypeStr && fns.Str != nil:
			return fns.Str(cell)
		case typ == TypeInt && fns.Int != nil:
			return fns.Int(cell)
		case typ == TypeFloat && fns.Float != nil:
			return fns.Float(cell)
		}
		return cell
	})
}
