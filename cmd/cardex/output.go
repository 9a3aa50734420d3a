package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/csv"
	"github.com/fwojciec/cardex/excelize"
	"github.com/fwojciec/cardex/fs"
	"github.com/fwojciec/cardex/htmltomarkdown"
	"github.com/fwojciec/cardex/slog"
	"github.com/fwojciec/cardex/sqlite"
)

// Output formats.
const (
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatMarkdown = "markdown"
	FormatSQLite   = "sqlite"
)

var formatsByExt = map[string]string{
	".csv":      FormatCSV,
	".xlsx":     FormatXLSX,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".db":       FormatSQLite,
	".sqlite":   FormatSQLite,
	".sqlite3":  FormatSQLite,
}

// resolveFormat returns the explicit format, or infers it from the path's
// extension. Returns EINVALID for unknown formats.
func resolveFormat(path, format string) (string, error) {
	if format != "" {
		switch format {
		case FormatCSV, FormatXLSX, FormatMarkdown, FormatSQLite:
			return format, nil
		}
		return "", cardex.Errorf(cardex.EINVALID, "unknown format %q", format)
	}
	if f, ok := formatsByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", cardex.Errorf(cardex.EINVALID, "cannot infer format from %q; use --format", path)
}

// outputPath returns path, or name.csv when path is empty.
func outputPath(path, name string) string {
	if path != "" {
		return path
	}
	return name + ".csv"
}

// writeTable writes t to path in the given format and reports the result
// on stdout.
func writeTable(deps *Dependencies, t *cardex.Table, path, format string) error {
	format, err := resolveFormat(path, format)
	if err != nil {
		return err
	}

	w, closeFn, err := openWriter(path, format)
	if err != nil {
		return err
	}

	if err := writeAndClose(deps.Ctx, slog.NewLoggingTableWriter(w, deps.Logger), t, closeFn); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", len(t.Rows), path)
	return nil
}

// writeAndClose writes t with w and then releases the writer. A close error
// fails the write, since a database flushes its last pages on close.
func writeAndClose(ctx context.Context, w cardex.TableWriter, t *cardex.Table, closeFn func() error) error {
	err := w.WriteTable(ctx, t)
	if cerr := closeFn(); cerr != nil && err == nil {
		return fmt.Errorf("failed to close output: %w", cerr)
	}
	return err
}

// openWriter returns a table writer for format and a function releasing it.
func openWriter(path, format string) (cardex.TableWriter, func() error, error) {
	noop := func() error { return nil }
	switch format {
	case FormatCSV:
		return fs.NewWriter(path, csv.NewEncoder()), noop, nil
	case FormatXLSX:
		return fs.NewWriter(path, excelize.NewEncoder()), noop, nil
	case FormatMarkdown:
		return fs.NewWriter(path, htmltomarkdown.NewEncoder()), noop, nil
	case FormatSQLite:
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewTableService(db), db.Close, nil
	}
	return nil, nil, cardex.Errorf(cardex.EINVALID, "unknown format %q", format)
}

// tableStore opens the SQLite database at path for reading tables back.
func tableStore(path string) (cardex.TableService, func() error, error) {
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewTableService(db), db.Close, nil
}
