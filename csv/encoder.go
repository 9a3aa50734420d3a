// Package csv encodes tables as comma-separated values.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/fwojciec/cardex"
)

// Ensure Encoder implements cardex.TableEncoder at compile time.
var _ cardex.TableEncoder = (*Encoder)(nil)

// Encoder writes a header line of field names followed by one record per row.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes t to w.
func (e *Encoder) Encode(w io.Writer, t *cardex.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Fields); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return err
	}
	return cw.Error()
}
