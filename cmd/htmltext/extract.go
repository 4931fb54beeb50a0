package main

import (
	"fmt"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/readability"
	htmltextslog "github.com/fwojciec/htmltext/slog"
	"github.com/fwojciec/htmltext/tokenizer"
	"github.com/fwojciec/htmltext/trafilatura"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := readSource(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	switch c.Engine {
	case "readability", "trafilatura":
		return c.runDocumentEngine(deps, doc)
	default:
		return c.runWeightEngine(deps, doc)
	}
}

func (c *ExtractCmd) runWeightEngine(deps *Dependencies, doc string) error {
	opts := []tokenizer.ExtractorOption{
		tokenizer.WithSaveTags(c.Save...),
		tokenizer.WithRemoveTags(c.Remove...),
		tokenizer.WithMinWeight(c.MinWeight),
		tokenizer.WithExtractorLinkTag(c.LinkTag),
	}
	if c.Attrs {
		opts = append(opts, tokenizer.WithSaveAttrs())
	}

	inner, err := tokenizer.NewExtractor(opts...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	var extractor htmltext.Extractor = inner
	if c.Verbose {
		extractor = htmltextslog.NewLoggingExtractor(inner, deps.Logger)
	}

	extractor.Feed(doc)

	for name, values := range extractor.SavedTags() {
		for _, v := range values {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", name, v)
		}
	}
	fmt.Fprintln(deps.Stdout, extractor.Data())

	return nil
}

func (c *ExtractCmd) runDocumentEngine(deps *Dependencies, doc string) error {
	var engine htmltext.DocumentExtractor
	switch c.Engine {
	case "readability":
		engine = readability.NewExtractor()
	default:
		engine = trafilatura.NewExtractor()
	}

	result, err := engine.Extract(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stderr, "title: %s\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, result.Content)

	return nil
}
