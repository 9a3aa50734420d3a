package mock

import (
	"context"
	"io"

	"github.com/fwojciec/cardex"
)

var _ cardex.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of cardex.TableWriter.
type TableWriter struct {
	WriteTableFn func(ctx context.Context, t *cardex.Table) error
}

func (w *TableWriter) WriteTable(ctx context.Context, t *cardex.Table) error {
	return w.WriteTableFn(ctx, t)
}

var _ cardex.TableEncoder = (*TableEncoder)(nil)

// TableEncoder is a mock implementation of cardex.TableEncoder.
type TableEncoder struct {
	EncodeFn func(w io.Writer, t *cardex.Table) error
}

func (e *TableEncoder) Encode(w io.Writer, t *cardex.Table) error {
	return e.EncodeFn(w, t)
}
