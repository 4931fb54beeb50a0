// Package slog provides logging decorators for extraction components.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmltext"
)

// Ensure LoggingExtractor implements htmltext.Extractor.
var _ htmltext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for each document.
type LoggingExtractor struct {
	next   htmltext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next htmltext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Feed processes the document and logs input size, output size and duration.
func (e *LoggingExtractor) Feed(html string) {
	begin := time.Now()
	e.next.Feed(html)
	e.logger.Info("extraction",
		"input_bytes", len(html),
		"output_bytes", len(e.next.Data()),
		"saved_tags", len(e.next.SavedTags()),
		"duration", time.Since(begin),
	)
}

// Data delegates to the wrapped extractor.
func (e *LoggingExtractor) Data() string {
	return e.next.Data()
}

// SavedTags delegates to the wrapped extractor.
func (e *LoggingExtractor) SavedTags() map[string][]string {
	return e.next.SavedTags()
}
