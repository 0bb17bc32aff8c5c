package mock

import "github.com/wordcrawl/wordcrawl"

var _ wordcrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of wordcrawl.LinkExtractor.
type LinkExtractor struct {
	HrefsFn func(html string) ([]string, error)
}

func (e *LinkExtractor) Hrefs(html string) ([]string, error) {
	return e.HrefsFn(html)
}

var _ wordcrawl.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of wordcrawl.TextExtractor.
type TextExtractor struct {
	TextFn func(html string) (string, error)
}

func (e *TextExtractor) Text(html string) (string, error) {
	return e.TextFn(html)
}
