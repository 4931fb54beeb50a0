package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/bloom"
	"github.com/fwojciec/htmltext/fs"
	"github.com/fwojciec/htmltext/tokenizer"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	writer := fs.NewWriter(c.Out)

	var seen htmltext.SeenFilter
	if c.Dedup {
		seen = bloom.NewFilter(uint(len(c.Paths)), 0.001)
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, path := range c.Paths {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, err)
			return err
		}
		doc := string(b)

		// Dedup runs in the dispatch loop so the filter never sees
		// concurrent access.
		if seen != nil {
			if seen.Seen(doc) {
				fmt.Fprintf(deps.Stderr, "skip: %s (duplicate content)\n", path)
				continue
			}
			seen.Add(doc)
		}

		g.Go(func() error {
			// Extractor instances are not safe for concurrent use,
			// so each document gets its own.
			extractor, err := tokenizer.NewExtractor(
				tokenizer.WithSaveTags(c.Save...),
				tokenizer.WithRemoveTags(c.Remove...),
				tokenizer.WithMinWeight(c.MinWeight),
			)
			if err != nil {
				return err
			}

			extractor.Feed(doc)

			saved := extractor.SavedTags()
			var title string
			if titles := saved["title"]; len(titles) > 0 {
				title = titles[0]
			}

			res := &htmltext.Result{
				Source:      path,
				Title:       title,
				Data:        extractor.Data(),
				SavedTags:   saved,
				ExtractedAt: time.Now(),
			}
			if err := writer.WriteResult(ctx, res); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(deps.Stdout, "wrote: %s\n", path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	return nil
}
