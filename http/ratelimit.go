package http

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter, so concurrent requests to different
// hosts proceed while requests within one host are throttled.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a new HostLimiter with the specified requests
// per second limit. Each host gets a burst of 1 (no bursting allowed).
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
