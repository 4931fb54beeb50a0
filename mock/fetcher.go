package mock

import (
	"context"

	"github.com/fwojciec/htmltext"
)

var _ htmltext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of htmltext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ htmltext.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmltext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
