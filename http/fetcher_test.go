package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/htmltext"
	htmltexthttp "github.com/fwojciec/htmltext/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements htmltext.Fetcher at compile time.
var _ htmltext.Fetcher = (*htmltexthttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := htmltexthttp.NewFetcher()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("returns error for non-200 status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := htmltexthttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := htmltexthttp.NewFetcher(htmltexthttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := htmltexthttp.NewFetcher()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("throttles requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := htmltexthttp.NewHostLimiter(10) // 100ms between requests

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		elapsed := time.Since(start)

		assert.GreaterOrEqual(t, elapsed, 90*time.Millisecond)
	})

	t.Run("does not throttle across hosts", func(t *testing.T) {
		t.Parallel()

		limiter := htmltexthttp.NewHostLimiter(1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "one.example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "two.example.com"))
		elapsed := time.Since(start)

		assert.Less(t, elapsed, 500*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := htmltexthttp.NewHostLimiter(0.001)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx, "slow.example.com"))
		assert.Error(t, limiter.Wait(ctx, "slow.example.com"))
	})
}
