// Package bleve implements ephemeral full-text search over transient
// document sets using an in-memory bleve index.
package bleve

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	index "github.com/blevesearch/bleve_index_api"

	"github.com/fwojciec/doxie"
)

const (
	// titleBoost favors title matches over body matches.
	titleBoost = 1.8

	// snippetMaxLen truncates assembled snippets.
	snippetMaxLen = 300

	// snippetFragments is the number of highlighted fragments joined
	// into one snippet.
	snippetFragments = 2

	// fallbackTitleLen is how much leading text stands in for a
	// missing title.
	fallbackTitleLen = 120
)

// Ensure Searcher implements doxie.Searcher at compile time.
var _ doxie.Searcher = (*Searcher)(nil)

// Searcher ranks transient document sets with a per-call in-memory
// index. Stateless; safe for concurrent use.
type Searcher struct{}

// NewSearcher creates a Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// indexRow is the flattened shape of one document in the index.
type indexRow struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Space   string `json:"space"`
	PageID  string `json:"page_id"`
}

// Search builds a fresh index over docs, answers query, and discards
// the index. At most max(1, k) hits are returned, ranked by relevance
// with ties broken by document insertion order.
func (s *Searcher) Search(ctx context.Context, docs []*doxie.Document, queryStr string, k int) ([]doxie.Hit, error) {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" || len(docs) == 0 {
		return []doxie.Hit{}, nil
	}
	if k < 1 {
		k = 1
	}

	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, doxie.Errorf(doxie.EINTERNAL, "create index: %v", err)
	}
	defer idx.Close()

	rows := make([]indexRow, len(docs))
	batch := idx.NewBatch()
	for i, doc := range docs {
		rows[i] = newIndexRow(doc)
		// Zero-padded ordinal IDs make the ID sort tiebreak follow
		// insertion order.
		if err := batch.Index(fmt.Sprintf("%08d", i), rows[i]); err != nil {
			return nil, doxie.Errorf(doxie.EINTERNAL, "index document: %v", err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, doxie.Errorf(doxie.EINTERNAL, "index batch: %v", err)
	}

	req := bleve.NewSearchRequestOptions(buildQuery(queryStr), k, 0, false)
	req.SortBy([]string{"-_score", "_id"})
	req.Fields = []string{"title", "url", "source", "space", "page_id"}
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Highlight.AddField("content")

	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, doxie.Errorf(doxie.EINTERNAL, "search: %v", err)
	}

	hits := make([]doxie.Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, doxie.Hit{
			Score:   h.Score,
			Snippet: snippet(h.Fragments["content"]),
			Title:   fieldString(h.Fields, "title"),
			URL:     fieldString(h.Fields, "url"),
			Source:  fieldString(h.Fields, "source"),
			Space:   fieldString(h.Fields, "space"),
			PageID:  fieldString(h.Fields, "page_id"),
		})
	}
	return hits, nil
}

// newIndexRow flattens a document for indexing, falling back through
// the metadata key aliases used by older exports.
func newIndexRow(doc *doxie.Document) indexRow {
	title := doc.Meta(doxie.MetaTitle)
	if title == "" {
		title = truncateRunes(doc.Text, fallbackTitleLen)
	}
	return indexRow{
		Title:   title,
		Content: doc.Text,
		URL:     doc.Meta(doxie.MetaSourceURL, doxie.MetaURL),
		Source:  doc.Meta(doxie.MetaSource, doxie.MetaOrigin),
		Space:   doc.Meta(doxie.MetaSpace),
		PageID:  doc.Meta(doxie.MetaPageID, doxie.MetaID),
	}
}

// buildMapping defines the per-call index: stemmed english text for
// title and content, verbatim keyword fields for the metadata
// pass-throughs.
func buildMapping() mapping.IndexMapping {
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = en.AnalyzerName

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name
	keywordField.IncludeInAll = false

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("title", textField)
	docMapping.AddFieldMappingsAt("content", textField)
	for _, name := range []string{"url", "source", "space", "page_id"} {
		docMapping.AddFieldMappingsAt(name, keywordField)
	}

	im := bleve.NewIndexMapping()
	im.DefaultMapping = docMapping
	im.DefaultAnalyzer = en.AnalyzerName
	im.ScoringModel = index.BM25Scoring
	return im
}

// buildQuery combines a boosted title match, a content match, and the
// parsed query-string form of the input. Query syntax that fails to
// parse degrades to literal phrase matching instead of failing.
func buildQuery(queryStr string) query.Query {
	titleMatch := bleve.NewMatchQuery(queryStr)
	titleMatch.SetField("title")
	titleMatch.SetBoost(titleBoost)

	contentMatch := bleve.NewMatchQuery(queryStr)
	contentMatch.SetField("content")

	parsed := bleve.NewQueryStringQuery(queryStr)
	if _, err := parsed.Parse(); err != nil {
		titlePhrase := bleve.NewMatchPhraseQuery(queryStr)
		titlePhrase.SetField("title")
		titlePhrase.SetBoost(titleBoost)

		contentPhrase := bleve.NewMatchPhraseQuery(queryStr)
		contentPhrase.SetField("content")

		return bleve.NewDisjunctionQuery(titlePhrase, contentPhrase)
	}

	return bleve.NewDisjunctionQuery(titleMatch, contentMatch, parsed)
}

// snippet joins up to snippetFragments highlighted fragments and caps
// the result at snippetMaxLen.
func snippet(fragments []string) string {
	if len(fragments) > snippetFragments {
		fragments = fragments[:snippetFragments]
	}
	return truncateRunes(strings.Join(fragments, " … "), snippetMaxLen)
}

// truncateRunes caps s at max runes, cutting on a rune boundary so the
// result is always valid UTF-8.
func truncateRunes(s string, max int) string {
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

func fieldString(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}
