// Package typetab reads delimited text data and infers a scalar type for
// each column, exposing the result as a typed, immutable-by-convention table.
//
// Only four column types exist: None (every cell empty), int, float and str.
// Inference folds a per-cell classification over each column: a single
// non-numeric cell commits the column to str, a float widens an int column
// to float, and empty cells never influence the outcome.
//
// # Reading
//
// [Read] and [ReadFile] parse CSV input, trim every cell, infer column
// types and cast the raw strings into typed [Cell] values in one step:
//
//	t, err := typetab.ReadFile("sample.csv", typetab.WithDelimiter(';'))
//
// Sources without a header row get positional column names "0".."n-1":
//
//	t, err := typetab.Read(f, typetab.WithoutHeader())
//
// Loaders that parse their own formats can hand a rectangular grid of raw
// strings to [FromStrings] instead.
//
// # Transforming
//
// Every operation returns a new Table and leaves its input untouched.
// [MapNames] and [MapData] are the primitives; [ConvertMissingCells],
// [ConvertColumns] and [ConvertTypes] are built on top of them:
//
//	t = typetab.ConvertMissingCells(t, typetab.Defaults{Int: -1})
//	t = typetab.ConvertTypes(t, typetab.TypeFuncs{
//	    Str: func(c typetab.Cell) typetab.Cell {
//	        return typetab.StrCell(strings.ToLower(c.Str()))
//	    },
//	})
//
// # Inspecting
//
// [Column] and [Columns] project column views out of a table; [Frequencies]
// counts distinct values in a column. [Fprint] renders a table with
// type-annotated headers for quick inspection.
//
// # Errors
//
// A row whose length disagrees with the header fails the whole load with a
// [ShapeError]. A column lookup with no match returns a [NotFoundError].
// Malformed numbers are never errors; they classify a cell as str.
package typetab
