package htmltext

// Cleaner removes configured elements from an HTML document while
// preserving the rest of the markup. Implementations must tolerate
// malformed input: unmatched closes are ignored, unclosed elements are
// treated as implicitly closed, and broken attributes are dropped rather
// than failing the parse.
type Cleaner interface {
	// Clean returns the filtered markup. It never fails on malformed
	// HTML; errors are reserved for inputs the implementation cannot
	// parse at all.
	Clean(html string) (string, error)
}
