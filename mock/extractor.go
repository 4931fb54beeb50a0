package mock

import "github.com/fwojciec/htmltext"

var _ htmltext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmltext.Extractor.
type Extractor struct {
	FeedFn      func(html string)
	DataFn      func() string
	SavedTagsFn func() map[string][]string
}

func (e *Extractor) Feed(html string) {
	e.FeedFn(html)
}

func (e *Extractor) Data() string {
	return e.DataFn()
}

func (e *Extractor) SavedTags() map[string][]string {
	return e.SavedTagsFn()
}

var _ htmltext.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of htmltext.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(html string) (*htmltext.Document, error)
}

func (e *DocumentExtractor) Extract(html string) (*htmltext.Document, error) {
	return e.ExtractFn(html)
}
