package typetab

// cell.go defines the scalar value model: the Type enumeration assigned to
// columns and the Cell tagged union holding individual data points.

import (
	"encoding/json"
	"strconv"
)

// Type identifies the single scalar type governing all cells in a column.
type Type int

const (
	// TypeNone marks a column whose type could not be inferred because
	// every cell in it is empty. It also tags null cells.
	TypeNone Type = iota
	TypeInt
	TypeFloat
	TypeStr
)

// String returns the display name of the type: "None", "int", "float" or "str".
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	}
	return "invalid"
}

// MarshalJSON encodes the type as its display name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Cell is one data point at a (row, column) position. It is a tagged union
// over null, int64, float64 and string. The zero value is the null cell.
//
// Cell is a comparable value type, so cells can be compared with == and
// used directly as map keys (see Frequencies).
type Cell struct {
	kind Type
	i    int64
	f    float64
	s    string
}

// Null is the null cell, the explicit representation of a missing value.
var Null = Cell{}

// IntCell returns a cell holding an integer value.
func IntCell(v int64) Cell { return Cell{kind: TypeInt, i: v} }

// FloatCell returns a cell holding a floating-point value.
func FloatCell(v float64) Cell { return Cell{kind: TypeFloat, f: v} }

// StrCell returns a cell holding a string value.
func StrCell(v string) Cell { return Cell{kind: TypeStr, s: v} }

// Kind returns the scalar type of the value held by this cell.
// Null cells report TypeNone.
func (c Cell) Kind() Type { return c.kind }

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool { return c.kind == TypeNone }

// Int returns the integer value. It is zero unless Kind is TypeInt.
func (c Cell) Int() int64 { return c.i }

// Float returns the floating-point value. It is zero unless Kind is TypeFloat.
func (c Cell) Float() float64 { return c.f }

// Str returns the string value. It is empty unless Kind is TypeStr.
func (c Cell) Str() string { return c.s }

// String returns the canonical text form of the cell: "NULL" for null
// cells, the shortest exact decimal form for floats, and the value itself
// for integers and strings.
func (c Cell) String() string {
	switch c.kind {
	case TypeNone:
		return "NULL"
	case TypeInt:
		return strconv.FormatInt(c.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	default:
		return c.s
	}
}

// MarshalJSON encodes the cell as a JSON null, number or string.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case TypeNone:
		return []byte("null"), nil
	case TypeInt:
		return json.Marshal(c.i)
	case TypeFloat:
		return json.Marshal(c.f)
	default:
		return json.Marshal(c.s)
	}
}
