package doxie

// Metadata keys shared across sources. Producers write them, consumers
// (the searcher, the CLI) read them; the map itself is free-form and
// individual sources may add their own keys.
const (
	MetaTitle       = "title"
	MetaSourceURL   = "source_url"
	MetaURL         = "url"
	MetaSource      = "source"
	MetaOrigin      = "origin"
	MetaSpace       = "space"
	MetaPageID      = "page_id"
	MetaID          = "id"
	MetaOwner       = "owner"
	MetaRepo        = "repo"
	MetaRef         = "ref"
	MetaPath        = "path"
	MetaContentHash = "content_hash"
)

// Source identifiers recorded under MetaSource.
const (
	SourceWeb    = "web"
	SourceGitHub = "github"
)

// Section represents a heading discovered in a document.
// Level is hierarchical: 1 is top-level (H1), 2 is H2, and so on.
//
// Offsets are optional. Structural extraction discovers headings in order
// but does not compute character positions, so both offsets are typically
// nil. Consumers must treat section boundaries as ordinal, not positional.
type Section struct {
	Title       string `json:"title"`
	Level       int    `json:"level"`
	StartOffset *int   `json:"startOffset,omitempty"`
	EndOffset   *int   `json:"endOffset,omitempty"`
}

// Document is the normalized output of structural extraction: plain text,
// the heading hierarchy, and producer-defined metadata. A Document lives
// only for the duration of one operation and is never persisted.
type Document struct {
	Text     string            `json:"text"`
	Sections []Section         `json:"sections"`
	Metadata map[string]string `json:"metadata"`
}

// Meta returns the first non-empty metadata value among the given keys.
func (d *Document) Meta(keys ...string) string {
	if d.Metadata == nil {
		return ""
	}
	for _, k := range keys {
		if v := d.Metadata[k]; v != "" {
			return v
		}
	}
	return ""
}
