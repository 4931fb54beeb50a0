package main

import (
	"io"
	"os"
	"strings"
)

// readSource loads the document identified by input. An empty string or
// "-" reads stdin, http(s) URLs go through the fetcher, anything else is
// treated as a file path.
func readSource(deps *Dependencies, input string) (string, error) {
	if input == "" || input == "-" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return deps.Fetcher.Fetch(deps.Ctx, input)
	}

	b, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
