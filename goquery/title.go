package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/doxie"
)

// Ensure Titles implements doxie.TitleExtractor at compile time.
var _ doxie.TitleExtractor = (*Titles)(nil)

// Titles derives page titles for sitemap listings.
type Titles struct{}

// NewTitles creates a new Titles extractor.
func NewTitles() *Titles {
	return &Titles{}
}

// ExtractTitle returns the page title, preferring the <title> element and
// falling back to the first h1, h2, or h3 heading. Returns "" when the
// page has neither.
func (t *Titles) ExtractTitle(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	if title := visibleText(doc.Find("title").First()); title != "" {
		return title
	}

	for _, tag := range []string{"h1", "h2", "h3"} {
		if title := visibleText(doc.Find(tag).First()); title != "" {
			return title
		}
	}

	return ""
}
