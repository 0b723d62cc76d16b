// Package slog provides logging decorators for jobscout services using the
// standard library's structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscout"
)

// Ensure LoggingFetcher implements jobscout.Fetcher.
var _ jobscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with brief logging.
type LoggingFetcher struct {
	next   jobscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (content *jobscout.Content, err error) {
	defer func(begin time.Time) {
		var bytes, captured int
		if content != nil {
			bytes = len(content.Body)
			captured = len(content.Captured)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"captured", captured,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
