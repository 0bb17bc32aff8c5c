// Package crawl provides the crawl engine: a driver that drains a FIFO
// frontier of same-domain URLs, feeding fetched pages to word counting
// and link discovery until no URLs remain.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/bloom"
)

// Failure-log suppression filter sizing.
const (
	// failureLogExpectedURLs is the expected number of failing URLs for
	// Bloom filter sizing.
	failureLogExpectedURLs = 10000
	// failureLogFalsePositiveRate is acceptable because a false positive
	// only demotes a repeated warning to debug level.
	failureLogFalsePositiveRate = 0.01
)

// Driver runs a crawl to completion. It owns the crawl state (visited
// set, frequency table, and by default the frontier) exclusively for the
// lifetime of a Run call, so separate Driver runs are fully independent.
type Driver struct {
	Fetcher wordcrawl.Fetcher
	Links   wordcrawl.LinkExtractor

	// Frontier, when set, supplies the work queue for a Run call. It is
	// drained by Run and must not be shared between runs. When nil each
	// Run gets a fresh FIFO frontier from this package.
	Frontier wordcrawl.Frontier

	// Text, when set, narrows word counting to the visible text of each
	// page. When nil the raw body is counted, markup and all; markup
	// tokens rarely survive the letters-only word filter.
	Text wordcrawl.TextExtractor

	// Limiter, when set, paces requests per domain.
	Limiter wordcrawl.Limiter

	// Logger receives page progress and fetch failures. Optional.
	Logger *slog.Logger

	// Workers sets the number of concurrent fetches. Values below two
	// select the strictly sequential breadth-first crawl.
	Workers int
}

// Result holds the outcome of a crawl.
type Result struct {
	// Table is the accumulated word-frequency table.
	Table *wordcrawl.Table

	// Visited lists successfully processed URLs in completion order.
	Visited []string

	// Pages counts successfully processed pages.
	Pages int

	// Failed counts fetches that failed. Failed URLs are dropped without
	// retry and may be fetched again if rediscovered on a later page.
	Failed int
}

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	url   string
	words []string
	links []string
	err   error
}

// Run crawls from the given seeds until the frontier is empty and returns
// the accumulated result. The first seed defines the domain scope; the
// remaining seeds pass through the same admission rules as discovered
// links. If ctx is canceled mid-crawl, Run returns the partial result
// together with the context error.
func (d *Driver) Run(ctx context.Context, seeds []string) (*Result, error) {
	if len(seeds) == 0 {
		return nil, wordcrawl.Errorf(wordcrawl.EINVALID, "at least one seed URL required")
	}

	scope, err := wordcrawl.NewScope(seeds[0])
	if err != nil {
		return nil, err
	}

	frontier := d.Frontier
	if frontier == nil {
		frontier = NewFrontier()
	}
	visited := make(map[string]struct{})
	res := &Result{Table: wordcrawl.NewTable()}

	frontier.Push(seeds[0])
	for _, seed := range seeds[1:] {
		admit(frontier, visited, nil, scope, seed)
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	failSeen := bloom.NewFilter(failureLogExpectedURLs, failureLogFalsePositiveRate)

	if d.Workers > 1 {
		err := d.runPool(ctx, scope, frontier, visited, res, failSeen, logger)
		return res, err
	}

	for {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		u, ok := frontier.Pop()
		if !ok {
			break
		}

		r := d.processPage(ctx, u)
		d.handleResult(r, frontier, visited, nil, scope, res, failSeen, logger)
	}

	return res, nil
}

// processPage fetches one URL and extracts its words and resolved links.
// It does not touch shared crawl state.
func (d *Driver) processPage(ctx context.Context, rawURL string) pageResult {
	res := pageResult{url: rawURL}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		res.err = err
		return res
	}

	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, pageURL.Host); err != nil {
			res.err = err
			return res
		}
	}

	body, err := d.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		res.err = err
		return res
	}

	text := body
	if d.Text != nil {
		if t, terr := d.Text.Text(body); terr == nil {
			text = t
		}
	}
	res.words = wordcrawl.Tokenize(text)

	hrefs, err := d.Links.Hrefs(body)
	if err == nil {
		for _, href := range hrefs {
			if abs := ResolveHref(pageURL, href); abs != "" {
				res.links = append(res.links, abs)
			}
		}
	}

	return res
}

// handleResult applies one page's outcome to the crawl state. Failed
// fetches are logged and dropped; they are deliberately not recorded as
// visited, so a failing URL rediscovered later is queued again.
func (d *Driver) handleResult(
	r pageResult,
	frontier wordcrawl.Frontier,
	visited map[string]struct{},
	inflight map[string]struct{},
	scope wordcrawl.Scope,
	res *Result,
	failSeen *bloom.Filter,
	logger *slog.Logger,
) {
	if r.err != nil {
		res.Failed++
		if !failSeen.Test(r.url) {
			failSeen.Add(r.url)
			logger.Warn("fetch failed", "url", r.url, "error", r.err)
		} else {
			logger.Debug("fetch failed again", "url", r.url, "error", r.err)
		}
		return
	}

	for _, w := range r.words {
		res.Table.Inc(w)
	}
	for _, link := range r.links {
		admit(frontier, visited, inflight, scope, link)
	}

	visited[r.url] = struct{}{}
	res.Visited = append(res.Visited, r.url)
	res.Pages++

	logger.Info("page crawled", "url", r.url, "words", res.Table.Len())
}

// admit applies the frontier admission rules to a candidate URL: it must
// look like a page, sit inside the crawl scope, and be absent from the
// visited set, the in-flight set, and the frontier itself. Candidates
// failing any rule are silently discarded.
func admit(
	frontier wordcrawl.Frontier,
	visited map[string]struct{},
	inflight map[string]struct{},
	scope wordcrawl.Scope,
	rawURL string,
) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !wordcrawl.IsPageLike(u.Path) {
		return false
	}
	if !scope.Allows(u) {
		return false
	}
	if _, ok := visited[rawURL]; ok {
		return false
	}
	if _, ok := inflight[rawURL]; ok {
		return false
	}
	return frontier.Push(rawURL)
}
