package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/htmltext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   htmltext.Fetcher
	Converter htmltext.Converter
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract meaningful text from an HTML document"`
	Clean   CleanCmd   `cmd:"" help:"Clean an HTML document without extracting text"`
	Batch   BatchCmd   `cmd:"" help:"Extract text from many HTML files into a directory"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input     string   `arg:"" optional:"" help:"HTML file path or URL (- or empty for stdin)"`
	Save      []string `short:"s" help:"Tags whose text is captured separately (repeatable)"`
	Remove    []string `short:"r" default:"script,style" help:"Tags removed with their content (repeatable)"`
	MinWeight float64  `short:"w" default:"0" help:"Minimum chunk weight to keep"`
	LinkTag   string   `default:"a" help:"Tag counted as a link when weighing chunks"`
	Attrs     bool     `help:"Preserve tag attributes in intermediate markup"`
	Engine    string   `short:"e" default:"weight" enum:"weight,readability,trafilatura" help:"Extraction engine"`
	Verbose   bool     `short:"v" help:"Log extraction details to stderr"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Input        string   `arg:"" optional:"" help:"HTML file path or URL (- or empty for stdin)"`
	Strip        []string `help:"Tags removed keeping their content (repeatable)"`
	Delete       []string `help:"Tags removed together with their content (repeatable)"`
	KeepEntities bool     `help:"Emit character entities verbatim instead of decoding them"`
	Markdown     bool     `short:"m" help:"Convert the cleaned document to Markdown"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Paths       []string `arg:"" help:"HTML files to process"`
	Out         string   `short:"o" required:"" help:"Output directory"`
	Save        []string `short:"s" help:"Tags whose text is captured separately (repeatable)"`
	Remove      []string `short:"r" default:"script,style" help:"Tags removed with their content (repeatable)"`
	MinWeight   float64  `short:"w" default:"0" help:"Minimum chunk weight to keep"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
	Dedup       bool     `help:"Skip files whose content was already processed"`
}
