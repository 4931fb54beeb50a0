package htmltext

// Extractor extracts useful text from HTML documents. It is configured
// once at construction; each Feed starts from fresh internal state, so an
// instance can be reused for consecutive documents but is not safe for
// concurrent Feed calls.
type Extractor interface {
	// Feed processes one full document to completion. Malformed markup
	// is recovered silently and never surfaces to the caller.
	Feed(html string)

	// Data returns the extracted text of the most recently fed document.
	Data() string

	// SavedTags returns the captured text of the configured save tags,
	// keyed by tag name. Values appear in document order, including
	// duplicates when a tag name recurs.
	SavedTags() map[string][]string
}
