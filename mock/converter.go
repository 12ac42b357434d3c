package mock

import (
	"context"

	"github.com/fwojciec/doxie"
)

var _ doxie.Converter = (*Converter)(nil)

// Converter is a mock implementation of doxie.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ doxie.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of doxie.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
