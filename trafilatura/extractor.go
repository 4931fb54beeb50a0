// Package trafilatura adapts go-trafilatura as a whole-document engine.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/htmltext"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements htmltext.DocumentExtractor at compile time.
var _ htmltext.DocumentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*htmltext.Document, error) {
	if rawHTML == "" {
		return nil, htmltext.Errorf(htmltext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &htmltext.Document{
		Title:   result.Metadata.Title,
		Content: htmltext.NormalizeSpace(result.ContentText),
	}, nil
}
