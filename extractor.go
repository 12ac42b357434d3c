package doxie

// Extractor converts raw markup into a structured Document.
// Implementations are pure transformations: no network, no concurrency.
type Extractor interface {
	// Extract parses markup (HTML or a format the implementation renders
	// to HTML first) and returns the visible text, the heading sections,
	// and the given metadata. Malformed markup is handled best-effort:
	// missing elements yield fewer sections, never an error.
	Extract(markup string, metadata map[string]string) (*Document, error)
}

// LinkExtractor extracts hyperlinks from an HTML page.
type LinkExtractor interface {
	// ExtractLinks returns the unique absolute http(s) URLs referenced by
	// the page, in document order, with fragments stripped. The baseURL
	// is used to resolve relative references.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// TitleExtractor derives a human-readable page title from HTML.
type TitleExtractor interface {
	// ExtractTitle prefers the <title> element and falls back to the
	// first h1-h3 heading. Returns "" when neither is present.
	ExtractTitle(html string) string
}
