// Package goldmark provides Markdown structural extraction. Markdown is
// rendered to HTML with goldmark and handed to an HTML extractor, so both
// markup kinds share one structural contract.
package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/fwojciec/doxie"
)

// Ensure Extractor implements doxie.Extractor at compile time.
var _ doxie.Extractor = (*Extractor)(nil)

// Extractor extracts text and heading sections from Markdown or MDX
// content by rendering it to HTML first.
type Extractor struct {
	md   goldmark.Markdown
	html doxie.Extractor
}

// NewExtractor creates a new Extractor that delegates structural
// extraction of the rendered HTML to next. GitHub-flavored extensions are
// enabled so tables and task lists survive the rendering; fenced code
// blocks are part of CommonMark itself.
func NewExtractor(next doxie.Extractor) *Extractor {
	return &Extractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		html: next,
	}
}

// Extract renders the Markdown to HTML and extracts text and sections
// from the result. A document with no headings simply yields no sections.
func (e *Extractor) Extract(markup string, metadata map[string]string) (*doxie.Document, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(markup), &buf); err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "failed to render markdown: %v", err)
	}
	return e.html.Extract(buf.String(), metadata)
}
