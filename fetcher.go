package wordcrawl

import "context"

// Fetcher retrieves page bodies from URLs. The crawler treats the body as
// opaque text; any decoding is the fetcher's concern.
type Fetcher interface {
	// Fetch retrieves the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter provides per-domain request pacing.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
