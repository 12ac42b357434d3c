package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/doxie"
)

// Ensure Links implements doxie.LinkExtractor at compile time.
var _ doxie.LinkExtractor = (*Links)(nil)

// Links extracts hyperlinks from HTML pages for crawl frontier expansion.
type Links struct{}

// NewLinks creates a new Links extractor.
func NewLinks() *Links {
	return &Links{}
}

// ExtractLinks returns the unique absolute http(s) URLs referenced by
// anchor tags, in document order. Relative references are resolved against
// baseURL; fragments are stripped, so URLs differing only by fragment
// collapse into one.
func (l *Links) ExtractLinks(markup string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved := NormalizeURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// NormalizeURL resolves href against base, strips the fragment, and
// returns the absolute URL. Returns "" for unusable references
// (javascript:, mailto:, unparsable, non-http schemes).
func NormalizeURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	abs.Fragment = ""
	return abs.String()
}
