package main

import (
	"fmt"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/tokenizer"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	doc, err := readSource(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	opts := []tokenizer.CleanerOption{
		tokenizer.WithRemoveWithoutContent(c.Strip...),
		tokenizer.WithRemoveWithContent(c.Delete...),
	}
	if c.KeepEntities {
		opts = append(opts, tokenizer.WithVerbatimEntities())
	}

	cleaned, err := tokenizer.NewCleaner(opts...).Clean(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(cleaned)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmltext.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	fmt.Fprintln(deps.Stdout, cleaned)

	return nil
}
