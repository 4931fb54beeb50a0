package htmltext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
