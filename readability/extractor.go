// Package readability adapts go-readability as a whole-document engine.
package readability

import (
	"strings"

	"github.com/fwojciec/htmltext"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements htmltext.DocumentExtractor at compile time.
var _ htmltext.DocumentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &htmltext.Document{
		Title:   article.Title,
		Content: htmltext.NormalizeSpace(article.TextContent),
	}, nil
}
