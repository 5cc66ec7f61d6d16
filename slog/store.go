// Package slog provides log/slog decorators for the describer store and
// the path resolver.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ddir"
)

// Ensure LoggingStore implements ddir.DescriberStore.
var _ ddir.DescriberStore = (*LoggingStore)(nil)

// LoggingStore wraps a DescriberStore with debug logging.
type LoggingStore struct {
	next   ddir.DescriberStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next ddir.DescriberStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Load(ctx context.Context) (d *ddir.Describer, err error) {
	defer func(begin time.Time) {
		entries := 0
		if d != nil {
			entries = len(d.Descriptions()) + len(d.Patterns())
		}
		s.logger.Info("describer load",
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, d *ddir.Describer) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("describer save",
			"descriptions", len(d.Descriptions()),
			"patterns", len(d.Patterns()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, d)
}
