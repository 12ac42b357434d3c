package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/doxie"
)

// Ensure LoggingSource implements doxie.Source at compile time.
var _ doxie.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with per-invocation logging. Each Fetch
// gets a unique ID so its log lines can be correlated.
type LoggingSource struct {
	next   doxie.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next doxie.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Fetch delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Fetch(ctx context.Context) (docs []*doxie.Document, err error) {
	id := uuid.NewString()
	s.logger.Info("source fetch started", "fetch_id", id)
	defer func(begin time.Time) {
		s.logger.Info("source fetch finished",
			"fetch_id", id,
			"documents", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx)
}
