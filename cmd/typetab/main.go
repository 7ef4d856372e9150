// Command typetab reads a CSV file, infers a type for every column and
// prints the typed table. It can also list value frequencies for a
// column, substitute defaults for missing values, export the table to
// PostgreSQL, and serve the table over HTTP for inspection.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/typetab"
	"github.com/JonMunkholm/typetab/internal/config"
	"github.com/JonMunkholm/typetab/internal/logging"
	"github.com/JonMunkholm/typetab/internal/web"
	"github.com/JonMunkholm/typetab/pgexport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "typetab: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win via Overload
	// only for values the file sets.
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	var (
		delimiter = flag.String("d", cfg.Read.Delimiter, "field delimiter (single character)")
		noHeader  = flag.Bool("no-header", cfg.Read.NoHeader, "treat the first row as data; name columns 0..n-1")
		freqCol   = flag.String("freq", "", "print value frequencies for the named column")
		missing   = flag.Bool("missing", false, "replace missing values with the -dstr/-dint/-dfloat defaults")
		dstr      = flag.String("dstr", "", "replacement for missing values in str columns")
		dint      = flag.Int64("dint", 0, "replacement for missing values in int columns")
		dfloat    = flag.Float64("dfloat", 0, "replacement for missing values in float columns")
		export    = flag.Bool("export", false, "export the table to PostgreSQL (DATABASE_URL)")
		serve     = flag.Bool("serve", false, "serve the table over HTTP after printing")
		quiet     = flag.Bool("q", false, "do not print the table")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.csv>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d ';' -no-header data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -freq city data.csv\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	d, size := utf8.DecodeRuneInString(*delimiter)
	if size == 0 || size != len(*delimiter) {
		return fmt.Errorf("delimiter must be a single character, got %q", *delimiter)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > cfg.Read.MaxFileSize {
		return fmt.Errorf("%s is %d bytes, above the configured limit of %d", path, info.Size(), cfg.Read.MaxFileSize)
	}

	opts := []typetab.Option{typetab.WithDelimiter(d)}
	if *noHeader {
		opts = append(opts, typetab.WithoutHeader())
	}
	table, err := typetab.ReadFile(path, opts...)
	if err != nil {
		return err
	}
	slog.Info("table loaded", "file", path, "rows", table.Len(), "columns", table.Width())

	if *missing {
		table = typetab.ConvertMissingCells(table, typetab.Defaults{
			Str:   *dstr,
			Int:   *dint,
			Float: *dfloat,
		})
	}

	if !*quiet {
		if err := typetab.Fprint(os.Stdout, table); err != nil {
			return err
		}
	}

	if *freqCol != "" {
		if err := printFrequencies(table, *freqCol); err != nil {
			return err
		}
	}

	if *export {
		if err := exportTable(cfg, table); err != nil {
			return err
		}
	}

	if *serve {
		return serveTable(cfg, table)
	}
	return nil
}

// printFrequencies lists distinct values of one column with their counts,
// most frequent first.
func printFrequencies(t typetab.Table, name string) error {
	col, err := typetab.Column(t, name)
	if err != nil {
		return err
	}
	freq := typetab.Frequencies(col)

	values := make([]typetab.Cell, 0, len(freq))
	for value := range freq {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		if freq[values[i]] != freq[values[j]] {
			return freq[values[i]] > freq[values[j]]
		}
		return values[i].String() < values[j].String()
	})

	fmt.Printf("\n%s (%s)\n", col.Name, col.Type)
	for _, value := range values {
		fmt.Printf("%6d  %s\n", freq[value], value)
	}
	return nil
}

// exportTable writes the table to Postgres using the configured URL and
// destination table.
func exportTable(cfg *config.Config, t typetab.Table) error {
	if cfg.Export.DatabaseURL == "" {
		return fmt.Errorf("export requested but DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Export.Timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Export.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	res, err := pgexport.New(pool).Export(ctx, t, pgexport.Options{
		Table:       cfg.Export.Table,
		CreateTable: true,
		LoadID:      cfg.Export.LoadID,
	})
	if err != nil {
		return err
	}
	slog.Info("table exported",
		"table", res.Table,
		"rows", res.Rows,
		"load_id", res.LoadID,
	)
	return nil
}

// serveTable runs the preview server until interrupted.
func serveTable(cfg *config.Config, t typetab.Table) error {
	server := web.NewServer(t, cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
