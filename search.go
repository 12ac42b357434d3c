package doxie

import "context"

// DefaultK is the default number of search hits returned.
const DefaultK = 5

// Hit is a single ranked search result.
type Hit struct {
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Source  string  `json:"source"`
	Space   string  `json:"space"`
	PageID  string  `json:"pageId"`
}

// Searcher executes one-shot keyword search over a transient document set.
// Each call builds a fresh in-memory index, answers the query, and discards
// the index; no state survives across calls and concurrent calls share
// nothing.
type Searcher interface {
	// Search returns at most max(1, k) hits ranked by relevance.
	// An empty or whitespace-only query returns no hits and no error.
	// Unparsable query syntax degrades to a literal interpretation
	// rather than failing.
	Search(ctx context.Context, docs []*Document, query string, k int) ([]Hit, error)
}
