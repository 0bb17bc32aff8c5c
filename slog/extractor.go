package slog

import (
	"log/slog"
	"time"

	"github.com/wordcrawl/wordcrawl"
)

// Ensure LoggingLinkExtractor implements wordcrawl.LinkExtractor.
var _ wordcrawl.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   wordcrawl.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next wordcrawl.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// Hrefs delegates to the wrapped extractor and logs the operation.
func (e *LoggingLinkExtractor) Hrefs(html string) (hrefs []string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("link extraction",
			"count", len(hrefs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Hrefs(html)
}
