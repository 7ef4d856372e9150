package typetab

// reader.go is the CSV loader: it turns delimited text into the ordered
// names and rectangular raw grid that FromStrings consumes. Quoting and
// escaping follow encoding/csv; this package adds cell trimming, BOM
// handling, positional names for headerless input, and shape checking
// with row-level detail.

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option configures Read and ReadFile.
type Option func(*readConfig)

type readConfig struct {
	delimiter  rune
	skipHeader bool
}

// WithDelimiter sets the field separator. The default is ','.
func WithDelimiter(d rune) Option {
	return func(cfg *readConfig) { cfg.delimiter = d }
}

// WithoutHeader treats the first row as data. Column names are
// synthesized as "0".."n-1" from the width of the first data row.
func WithoutHeader() Option {
	return func(cfg *readConfig) { cfg.skipHeader = true }
}

// Read loads CSV data from r, infers a type for every column and returns
// the fully cast table. All cells are whitespace-trimmed. Every row must
// have the same number of cells as the header; a shorter or longer row
// fails the whole read with a ShapeError and no partial table.
//
// A headerless source with no rows at all yields an empty table: zero
// columns, zero rows, no error.
func Read(r io.Reader, opts ...Option) (Table, error) {
	cfg := readConfig{delimiter: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(skipBOM(r))
	cr.Comma = cfg.delimiter
	// Shape is checked below so that the error carries the row index.
	cr.FieldsPerRecord = -1

	var names []string
	if !cfg.skipHeader {
		rec, err := cr.Read()
		if err == io.EOF {
			return emptyTable(), nil
		}
		if err != nil {
			return Table{}, fmt.Errorf("read header: %w", err)
		}
		names = rec
	}

	var raw [][]string
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row %d: %w", i, err)
		}
		if names == nil {
			names = indexNames(len(rec))
		}
		if len(rec) != len(names) {
			return Table{}, ShapeError{Row: i, Want: len(names), Got: len(rec)}
		}
		raw = append(raw, rec)
	}
	if names == nil {
		return emptyTable(), nil
	}

	return FromStrings(trimAll(names), raw)
}

// ReadFile is Read over the contents of the named file.
func ReadFile(path string, opts ...Option) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return Read(f, opts...)
}

func emptyTable() Table {
	return Table{names: nil, types: map[string]Type{}, rows: nil}
}

// indexNames synthesizes positional column names "0".."n-1".
func indexNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, s := range rec {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// skipBOM strips a UTF-8 byte order mark from the start of the stream.
// Windows tools routinely prepend one, and encoding/csv would otherwise
// fold it into the first header name.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil &&
		lead[0] == 0xEF && lead[1] == 0xBB && lead[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
