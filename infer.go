package typetab

// infer.go implements the per-column type inference fold.
//
// Each column starts at TypeNone and is folded left to right over its
// cells. The precedence rules, applied in order:
//
//  1. str absorbs: once any cell is non-numeric the column is str forever.
//  2. float widens int: a float cell in an int column makes it float.
//  3. the first non-empty cell resolves a TypeNone column to its own kind.
//  4. anything else leaves the column unchanged (empty cells in
//     particular never influence the outcome).
//
// A column whose cells are all empty stays TypeNone.

import "strconv"

// InferTypes computes one Type per column name from a rectangular grid of
// whitespace-trimmed raw strings. Rows must all have len(names) cells;
// enforcing that is the loader's job (see FromStrings).
//
// When names contains duplicates, the last column with a given name wins
// the map entry, matching plain map assignment.
func InferTypes(names []string, rows [][]string) map[string]Type {
	types := make(map[string]Type, len(names))
	for i, name := range names {
		types[name] = inferColumn(rows, i)
	}
	return types
}

// inferColumn folds the classification of every cell in column c into a
// single committed type.
func inferColumn(rows [][]string, c int) Type {
	committed := TypeNone
	for _, row := range rows {
		if committed == TypeStr {
			// str absorbs everything; classifying further cells
			// cannot change the result.
			break
		}
		switch kind := classify(row[c]); {
		case kind == TypeStr:
			committed = TypeStr
		case kind == TypeFloat && committed == TypeInt:
			committed = TypeFloat
		case committed == TypeNone && kind != TypeNone:
			committed = kind
		}
	}
	return committed
}

// classify reports the scalar kind of a single trimmed cell. The integer
// parse runs before the float parse: every valid integer literal is also a
// valid float literal, so the reverse order could never yield an int column.
func classify(raw string) Type {
	if raw == "" {
		return TypeNone
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return TypeInt
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return TypeFloat
	}
	return TypeStr
}
