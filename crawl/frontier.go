package crawl

import (
	"sync"

	"github.com/wordcrawl/wordcrawl"
)

// Compile-time interface verification.
var _ wordcrawl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO URL frontier backed by a ring buffer with
// an exact membership set for deduplication. Membership is exact rather
// than probabilistic because a URL whose fetch failed must be
// re-enqueueable when it is rediscovered later.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	head    int
	members map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{members: make(map[string]struct{})}
}

// Push adds a URL to the back of the queue.
// Returns false if the URL is already queued.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.members[url]; ok {
		return false
	}
	f.members[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the oldest queued URL.
// Returns false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.head == len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++
	delete(f.members, url)

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 >= len(f.queue) {
		f.queue = append([]string(nil), f.queue[f.head:]...)
		f.head = 0
	}

	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) - f.head
}

// Contains returns true if the URL is currently queued.
func (f *Frontier) Contains(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.members[url]
	return ok
}
