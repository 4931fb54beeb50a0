package htmltext

// Document holds whole-document content produced by a DocumentExtractor.
type Document struct {
	// Title is the page title extracted from metadata.
	Title string

	// Content is the main content with boilerplate removed. Depending on
	// the engine this is plain text or clean HTML.
	Content string
}

// DocumentExtractor extracts main content from an HTML page in one shot.
// Engines like readability or trafilatura implement this as an alternative
// to the chunk-weighing pipeline, e.g. as a fallback when no chunk clears
// the weight threshold.
type DocumentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*Document, error)
}
