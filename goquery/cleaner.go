// Package goquery provides a CSS-selector-based implementation of
// htmltext.Cleaner. Unlike the token-stream cleaner it builds a document
// tree, so callers can target elements by class or attribute selectors,
// at the cost of the parser normalizing the surrounding markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmltext"
)

// Ensure Cleaner implements htmltext.Cleaner at compile time.
var _ htmltext.Cleaner = (*Cleaner)(nil)

// Cleaner removes or unwraps elements matched by CSS selectors.
type Cleaner struct {
	removeSelectors []string
	unwrapSelectors []string
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithRemoveSelectors sets the selectors whose matches are deleted along
// with their content.
func WithRemoveSelectors(selectors ...string) Option {
	return func(c *Cleaner) {
		c.removeSelectors = selectors
	}
}

// WithUnwrapSelectors sets the selectors whose matches are replaced by
// their own children.
func WithUnwrapSelectors(selectors ...string) Option {
	return func(c *Cleaner) {
		c.unwrapSelectors = selectors
	}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean parses the document, applies the configured selectors and
// re-renders the result.
func (c *Cleaner) Clean(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	for _, selector := range c.removeSelectors {
		doc.Find(selector).Remove()
	}
	for _, selector := range c.unwrapSelectors {
		doc.Find(selector).Contents().Unwrap()
	}

	return doc.Html()
}
