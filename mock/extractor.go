package mock

import "github.com/fwojciec/cardex"

var _ cardex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cardex.Extractor.
type Extractor struct {
	ExtractFn func(raw []byte) ([]cardex.Row, error)
}

func (e *Extractor) Extract(raw []byte) ([]cardex.Row, error) {
	return e.ExtractFn(raw)
}
