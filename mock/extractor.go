package mock

import "github.com/fwojciec/doxie"

var _ doxie.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doxie.Extractor.
type Extractor struct {
	ExtractFn func(markup string, metadata map[string]string) (*doxie.Document, error)
}

func (e *Extractor) Extract(markup string, metadata map[string]string) (*doxie.Document, error) {
	return e.ExtractFn(markup, metadata)
}

var _ doxie.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of doxie.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ doxie.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of doxie.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) string
}

func (e *TitleExtractor) ExtractTitle(html string) string {
	return e.ExtractTitleFn(html)
}
