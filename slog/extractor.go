package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobscout"
)

// Ensure LoggingExtractor implements jobscout.LinkExtractor.
var _ jobscout.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   jobscout.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobscout.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractLinks(content, baseURL string) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract links",
			"extractor", e.next.Name(),
			"url", baseURL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(content, baseURL)
}

// Name returns the wrapped extractor's name.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}
