package mock

import "github.com/fwojciec/htmltext"

var _ htmltext.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of htmltext.Splitter.
type Splitter struct {
	SplitFn func(html string) ([]htmltext.Chunk, error)
}

func (s *Splitter) Split(html string) ([]htmltext.Chunk, error) {
	return s.SplitFn(html)
}

var _ htmltext.ChunkCleaner = (*ChunkCleaner)(nil)

// ChunkCleaner is a mock implementation of htmltext.ChunkCleaner.
type ChunkCleaner struct {
	StripFn func(markup string) htmltext.StripResult
}

func (c *ChunkCleaner) Strip(markup string) htmltext.StripResult {
	return c.StripFn(markup)
}
