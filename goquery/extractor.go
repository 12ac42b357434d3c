// Package goquery provides HTML structural extraction using CSS selectors.
// It turns raw markup into the doxie.Document shape: visible text with
// collapsed whitespace plus the heading hierarchy.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/doxie"
)

// Ensure Extractor implements doxie.Extractor at compile time.
var _ doxie.Extractor = (*Extractor)(nil)

// Extractor extracts text and heading sections from HTML.
// It is a pure transformation: best-effort on malformed markup, no
// network, no shared state.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns the visible text and heading sections.
// Text from script and style elements is dropped; tag boundaries become
// single spaces and runs of whitespace collapse to one space. Headings are
// scanned h1 through h6, each non-empty heading becoming a section at that
// level. Offsets are not computed: section boundaries are ordinal only.
func (e *Extractor) Extract(markup string, metadata map[string]string) (*doxie.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// html.Parse recovers from malformed markup; an error here means
		// the reader failed, which cannot happen for a string.
		return nil, doxie.Errorf(doxie.EINVALID, "failed to parse HTML: %v", err)
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	out := &doxie.Document{
		Text:     visibleText(doc.Selection),
		Metadata: metadata,
	}

	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, sel *goquery.Selection) {
			title := visibleText(sel)
			if title == "" {
				return
			}
			out.Sections = append(out.Sections, doxie.Section{
				Title: title,
				Level: level,
			})
		})
	}

	return out, nil
}

// visibleText collects the text nodes under a selection, skipping script
// and style subtrees, separating nodes by single spaces.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
