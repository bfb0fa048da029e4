package mock

import "github.com/fwojciec/kabar"

var _ kabar.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kabar.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*kabar.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*kabar.ExtractResult, error) {
	return e.ExtractFn(html)
}
