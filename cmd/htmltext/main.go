package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	htmltexthttp "github.com/fwojciec/htmltext/http"
	"github.com/fwojciec/htmltext/htmltomarkdown"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Requests per second used when fetching URLs. Set before calling Run().
	RateLimit float64
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{RateLimit: 1.0}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   htmltexthttp.NewFetcher(htmltexthttp.WithRateLimit(m.RateLimit)),
		Converter: htmltomarkdown.NewConverter(),
		Logger:    slog.New(slog.NewTextHandler(stderr, nil)),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmltext"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmltext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
