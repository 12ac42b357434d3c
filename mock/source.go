package mock

import (
	"context"

	"github.com/fwojciec/doxie"
)

var _ doxie.Source = (*Source)(nil)

// Source is a mock implementation of doxie.Source.
type Source struct {
	FetchFn func(ctx context.Context) ([]*doxie.Document, error)
}

func (s *Source) Fetch(ctx context.Context) ([]*doxie.Document, error) {
	return s.FetchFn(ctx)
}

var _ doxie.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of doxie.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, docs []*doxie.Document, query string, k int) ([]doxie.Hit, error)
}

func (s *Searcher) Search(ctx context.Context, docs []*doxie.Document, query string, k int) ([]doxie.Hit, error) {
	return s.SearchFn(ctx, docs, query, k)
}
