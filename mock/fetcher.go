package mock

import (
	"context"

	"github.com/wordcrawl/wordcrawl"
)

var _ wordcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wordcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ wordcrawl.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of wordcrawl.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
