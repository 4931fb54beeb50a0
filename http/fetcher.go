// Package http provides an HTTP-based implementation of htmltext.Fetcher
// so callers can extract text directly from URLs. Requests are rate
// limited per host to stay polite toward origin servers.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/htmltext"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements htmltext.Fetcher at compile time.
var _ htmltext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per host.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = NewHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", err
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
