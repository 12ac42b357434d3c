package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doxie"
)

// Ensure LoggingSearcher implements doxie.Searcher at compile time.
var _ doxie.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   doxie.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next doxie.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, docs []*doxie.Document, query string, k int) (hits []doxie.Hit, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"corpus", len(docs),
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, docs, query, k)
}
