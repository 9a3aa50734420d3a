// Package fs writes encoded tables to files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/cardex"
)

// Ensure Writer implements cardex.TableWriter at compile time.
var _ cardex.TableWriter = (*Writer)(nil)

// Writer encodes a table into a single file with atomic replace semantics.
// The table is written to path.tmp and renamed to path once fully encoded,
// so a failed run never leaves a truncated file behind.
type Writer struct {
	path string
	enc  cardex.TableEncoder
}

// NewWriter creates a new Writer that encodes tables with enc into path.
func NewWriter(path string, enc cardex.TableEncoder) *Writer {
	return &Writer{path: path, enc: enc}
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WriteTable encodes t and moves it into place.
func (w *Writer) WriteTable(ctx context.Context, t *cardex.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := w.enc.Encode(f, t); err != nil {
		f.Close()
		w.abort()
		return err
	}
	if err := f.Close(); err != nil {
		w.abort()
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		w.abort()
		return fmt.Errorf("move output into place: %w", err)
	}
	return nil
}

func (w *Writer) abort() {
	_ = os.Remove(w.tempPath())
}
