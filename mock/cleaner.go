package mock

import "github.com/fwojciec/htmltext"

var _ htmltext.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of htmltext.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
