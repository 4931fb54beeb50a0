package htmltext

import (
	"context"
	"time"
)

// Result is the outcome of extracting one document.
type Result struct {
	// Source identifies where the document came from (file path or URL).
	Source string

	// Title is the first saved "title" value, if any.
	Title string

	// Data is the extracted text.
	Data string

	// SavedTags maps save-tag names to their captured values in
	// document order.
	SavedTags map[string][]string

	// ExtractedAt records when the extraction ran.
	ExtractedAt time.Time
}

// ResultWriter persists extraction results.
type ResultWriter interface {
	// WriteResult stores one result.
	WriteResult(ctx context.Context, res *Result) error
}

// SeenFilter tracks already-processed content so batch runs can skip
// duplicate documents. False positives are possible; false negatives
// are not.
type SeenFilter interface {
	// Add records the content as seen.
	Add(content string)

	// Seen reports whether the content might have been seen before.
	Seen(content string) bool
}
