package mock

import "github.com/wordcrawl/wordcrawl"

var _ wordcrawl.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of wordcrawl.Frontier.
type Frontier struct {
	PushFn     func(url string) bool
	PopFn      func() (string, bool)
	LenFn      func() int
	ContainsFn func(url string) bool
}

func (f *Frontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Contains(url string) bool {
	return f.ContainsFn(url)
}
