package mock

import (
	"context"

	"github.com/fwojciec/htmltext"
)

var _ htmltext.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of htmltext.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, res *htmltext.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, res *htmltext.Result) error {
	return w.WriteResultFn(ctx, res)
}

var _ htmltext.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of htmltext.SeenFilter.
type SeenFilter struct {
	AddFn  func(content string)
	SeenFn func(content string) bool
}

func (f *SeenFilter) Add(content string) {
	f.AddFn(content)
}

func (f *SeenFilter) Seen(content string) bool {
	return f.SeenFn(content)
}
