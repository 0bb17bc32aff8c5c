// Package readability extracts main article text from HTML using
// go-readability. Boilerplate such as navigation and footers is
// excluded from the result.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/wordcrawl/wordcrawl"
)

// Ensure Extractor implements wordcrawl.TextExtractor at compile time.
var _ wordcrawl.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text processes raw HTML and returns the main content as plain text.
func (e *Extractor) Text(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", wordcrawl.Errorf(wordcrawl.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return article.TextContent, nil
}
