package wordcrawl

// Frontier manages the queue of URLs awaiting a fetch. Implementations
// must never hold the same URL twice; the queueing policy decides the
// traversal order (the default FIFO frontier in package crawl yields a
// breadth-first crawl).
type Frontier interface {
	// Push adds a URL to the queue.
	// Returns false if the URL is already queued.
	Push(url string) bool

	// Pop removes and returns the next queued URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of queued URLs.
	Len() int

	// Contains returns true if the URL is currently queued.
	Contains(url string) bool
}
