package crawl

import (
	"context"
	"sync"

	"github.com/wordcrawl/wordcrawl"
	"golang.org/x/time/rate"
)

var _ wordcrawl.Limiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per domain using token buckets. Each
// domain gets its own limiter, so a crawl that is restricted to one
// domain is effectively paced globally, while multi-domain callers are
// paced independently per domain.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter with the specified requests
// per second limit. Each domain gets a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
