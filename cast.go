package typetab

// cast.go converts raw string cells into typed values according to each
// column's inferred type.

import "strconv"

// Cast returns a new Table in which every cell holds a value of its
// column's type, or is null. A cell becomes null when it is already null,
// when it holds an empty string, or when its column has type TypeNone.
//
// Cast is idempotent: cells that already hold typed, non-string values are
// returned unchanged, so Cast(Cast(t)) equals Cast(t).
//
// Numeric parses cannot fail for tables built through inference, because
// InferTypes only commits a column to int or float after every non-empty
// cell in it parsed as that type or a narrower one. A parse failure here
// means the table's types were corrupted and panics.
func Cast(t Table) Table {
	return MapData(t, func(typ Type, name string, r, c int, cell Cell) Cell {
		return castCell(typ, cell)
	})
}

// castCell casts a single cell to the committed column type.
func castCell(typ Type, cell Cell) Cell {
	if cell.IsNull() || typ == TypeNone {
		return Null
	}
	if cell.Kind() != TypeStr {
		// Already cast.
		return cell
	}
	raw := cell.Str()
	if raw == "" {
		return Null
	}
	switch typ {
	case TypeStr:
		return cell
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			invariant("cell %q in an int column: %v", raw, err)
		}
		return IntCell(n)
	case TypeFloat:
		// Int-classified cells in a float column land here too; every
		// integer literal parses as a float.
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invariant("cell %q in a float column: %v", raw, err)
		}
		return FloatCell(f)
	}
	invariant("unrecognized column type %d", typ)
	return Null
}
