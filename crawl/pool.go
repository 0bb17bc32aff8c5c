package crawl

import (
	"context"
	"log/slog"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/bloom"
	"golang.org/x/sync/errgroup"
)

// runPool drains the frontier with Workers concurrent fetches. The
// coordinator goroutine remains the sole owner of the crawl state
// (frontier, visited set, frequency table); workers only fetch pages and
// extract words and links, so no state needs locking. A URL joins the
// in-flight set the moment it leaves the frontier, staged or dispatched,
// so the same URL is never fetched twice concurrently.
//
// Relative to the sequential driver the traversal is still roughly
// breadth-first, but completion order depends on fetch latency.
func (d *Driver) runPool(
	ctx context.Context,
	scope wordcrawl.Scope,
	frontier wordcrawl.Frontier,
	visited map[string]struct{},
	res *Result,
	failSeen *bloom.Filter,
	logger *slog.Logger,
) error {
	workCh := make(chan string, d.Workers)
	resultCh := make(chan pageResult)
	inflight := make(map[string]struct{})

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < d.Workers; i++ {
		g.Go(func() error {
			for u := range workCh {
				r := d.processPage(gctx, u)
				select {
				case resultCh <- r:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	handle := func(r pageResult) {
		delete(inflight, r.url)
		d.handleResult(r, frontier, visited, inflight, scope, res, failSeen, logger)
	}

	var next string
	haveNext := false
	if u, ok := frontier.Pop(); ok {
		next, haveNext = u, true
		inflight[u] = struct{}{}
	}

	for {
		if !haveNext && len(inflight) == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if haveNext {
			select {
			case workCh <- next:
				haveNext = false
			case r := <-resultCh:
				handle(r)
			case <-ctx.Done():
			}
		} else {
			select {
			case r := <-resultCh:
				handle(r)
			case <-ctx.Done():
			}
		}

		if !haveNext {
			if u, ok := frontier.Pop(); ok {
				next, haveNext = u, true
				inflight[u] = struct{}{}
			}
		}
	}

	// Let workers finish their in-flight pages and fold in the results.
	close(workCh)
	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(resultCh)
		close(done)
	}()
	for r := range resultCh {
		handle(r)
	}
	<-done

	return ctx.Err()
}
