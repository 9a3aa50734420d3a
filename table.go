package cardex

import (
	"context"
	"io"
)

// Row is a single extracted record keyed by field name.
type Row map[string]string

// Table is an ordered set of rows sharing one field layout.
type Table struct {
	Name   string
	Fields []string
	Rows   []Row
}

// NewTable returns an empty table with the given name and field order.
func NewTable(name string, fields []string) *Table {
	return &Table{Name: name, Fields: fields}
}

// Validate returns an error if the table cannot be written.
func (t *Table) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "table name required")
	}
	if len(t.Fields) == 0 {
		return Errorf(EINVALID, "table %q has no fields", t.Name)
	}
	return nil
}

// Records returns the rows as string slices in field order.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			rec[i] = row[f]
		}
		records = append(records, rec)
	}
	return records
}

// TableEncoder serializes a table into a byte stream.
type TableEncoder interface {
	Encode(w io.Writer, t *Table) error
}

// TableWriter persists tables.
type TableWriter interface {
	WriteTable(ctx context.Context, t *Table) error
}

// Extractor extracts rows from a raw document.
type Extractor interface {
	// Extract parses raw HTML, possibly a view-source capture, and returns
	// rows in document order. Returns ENOTFOUND if the page has no content
	// root at all.
	Extract(raw []byte) ([]Row, error)
}

// TableService stores tables by name.
type TableService interface {
	TableWriter

	// FindTable returns the stored table with the given name.
	// Returns ENOTFOUND if it does not exist.
	FindTable(ctx context.Context, name string) (*Table, error)

	// FindTableNames returns the names of all stored tables, sorted.
	FindTableNames(ctx context.Context) ([]string, error)

	// DeleteTable removes a table and its rows.
	// Returns ENOTFOUND if it does not exist.
	DeleteTable(ctx context.Context, name string) error
}
