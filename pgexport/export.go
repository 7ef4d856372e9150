// Package pgexport loads typed tables into PostgreSQL.
//
// The inferred column types map directly onto Postgres types (int→bigint,
// float→double precision, str and None→text), so a table can be exported
// without any user-declared schema. Rows are written with the COPY
// protocol, and every export run is tagged with a load ID so it can be
// deleted again as a unit.
package pgexport

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/typetab"
)

// LoadIDColumn is the name of the column holding the per-run load ID.
const LoadIDColumn = "load_id"

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Options configures an export run.
type Options struct {
	// Table is the destination table name. Required.
	Table string

	// CreateTable issues CREATE TABLE IF NOT EXISTS before copying.
	CreateTable bool

	// LoadID tags every exported row with a load_id column. When true
	// and ID is the zero UUID, a random ID is generated.
	LoadID bool
	ID     uuid.UUID
}

// Result describes a completed export.
type Result struct {
	Table  string
	LoadID uuid.UUID // zero when Options.LoadID was false
	Rows   int64
}

// Exporter writes tables to Postgres.
type Exporter struct {
	db DBTX
}

// New creates an Exporter over db.
func New(db DBTX) *Exporter {
	return &Exporter{db: db}
}

// Export writes every row of t into the destination table. With
// Options.CreateTable set it first creates the table from the inferred
// column types. The write is a single COPY; on error nothing is reported
// as written.
func (e *Exporter) Export(ctx context.Context, t typetab.Table, opts Options) (Result, error) {
	if opts.Table == "" {
		return Result{}, fmt.Errorf("pgexport: destination table name is required")
	}

	loadID := opts.ID
	if opts.LoadID && loadID == uuid.Nil {
		loadID = uuid.New()
	}

	if opts.CreateTable {
		if _, err := e.db.Exec(ctx, CreateTableSQL(t, opts)); err != nil {
			return Result{}, fmt.Errorf("create table %s: %w", opts.Table, err)
		}
	}

	cols := ColumnNames(t)
	rows := make([][]any, t.Len())
	for r, row := range t.Rows() {
		vals := make([]any, 0, t.Width()+1)
		for c, cell := range row {
			vals = append(vals, pgValue(t.TypeOf(t.Names()[c]), cell))
		}
		if opts.LoadID {
			vals = append(vals, pgtype.UUID{Bytes: loadID, Valid: true})
		}
		rows[r] = vals
	}
	if opts.LoadID {
		cols = append(cols, LoadIDColumn)
	}

	n, err := e.db.CopyFrom(ctx, pgx.Identifier{opts.Table}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return Result{}, fmt.Errorf("copy into %s: %w", opts.Table, err)
	}

	res := Result{Table: opts.Table, Rows: n}
	if opts.LoadID {
		res.LoadID = loadID
	}
	return res, nil
}

// DeleteLoad removes every row written by a previous export run,
// identified by its load ID. It returns the number of rows deleted.
func (e *Exporter) DeleteLoad(ctx context.Context, table string, loadID uuid.UUID) (int64, error) {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{LoadIDColumn}.Sanitize())
	tag, err := e.db.Exec(ctx, sql, pgtype.UUID{Bytes: loadID, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("delete load %s from %s: %w", loadID, table, err)
	}
	return tag.RowsAffected(), nil
}

// CreateTableSQL returns the CREATE TABLE IF NOT EXISTS statement for t.
func CreateTableSQL(t typetab.Table, opts Options) string {
	cols := ColumnNames(t)
	defs := make([]string, 0, len(cols)+1)
	for i, name := range t.Names() {
		defs = append(defs, fmt.Sprintf("%s %s",
			pgx.Identifier{cols[i]}.Sanitize(), PgType(t.TypeOf(name))))
	}
	if opts.LoadID {
		defs = append(defs, fmt.Sprintf("%s uuid", pgx.Identifier{LoadIDColumn}.Sanitize()))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pgx.Identifier{opts.Table}.Sanitize(), strings.Join(defs, ", "))
}

// PgType maps an inferred column type to a Postgres type. Columns with no
// inferred type hold nothing but NULLs, so text is as good as anything.
func PgType(t typetab.Type) string {
	switch t {
	case typetab.TypeInt:
		return "bigint"
	case typetab.TypeFloat:
		return "double precision"
	default:
		return "text"
	}
}

// ColumnNames derives Postgres column names from the table's headers:
// lowercased, spaces and other non-identifier characters replaced with
// underscores, deduplicated with numeric suffixes, positional fallback
// for empty headers.
func ColumnNames(t typetab.Table) []string {
	names := make([]string, t.Width())
	seen := make(map[string]bool, t.Width())
	for i, name := range t.Names() {
		col := toColumnName(name)
		if col == "" {
			col = fmt.Sprintf("column_%d", i)
		}
		for base, n := col, 2; seen[col]; n++ {
			col = fmt.Sprintf("%s_%d", base, n)
		}
		seen[col] = true
		names[i] = col
	}
	return names
}

func toColumnName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// pgValue converts a cell to the pgtype value for its column. Null cells
// become the column type's invalid (NULL) value.
func pgValue(typ typetab.Type, cell typetab.Cell) any {
	switch typ {
	case typetab.TypeInt:
		if cell.IsNull() {
			return pgtype.Int8{}
		}
		return pgtype.Int8{Int64: cell.Int(), Valid: true}
	case typetab.TypeFloat:
		if cell.IsNull() {
			return pgtype.Float8{}
		}
		f := cell.Float()
		if cell.Kind() == typetab.TypeInt {
			f = float64(cell.Int())
		}
		return pgtype.Float8{Float64: f, Valid: true}
	default:
		if cell.IsNull() {
			return pgtype.Text{}
		}
		return pgtype.Text{String: cell.String(), Valid: true}
	}
}
