package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ddir"
)

// Ensure LoggingResolver implements ddir.PathResolver.
var _ ddir.PathResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a PathResolver with debug logging.
type LoggingResolver struct {
	next   ddir.PathResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next ddir.PathResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(path string) (resolved string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("path resolution",
			"path", path,
			"resolved", resolved,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(path)
}
