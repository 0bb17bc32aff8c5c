// Package htmltext extracts visible text from HTML documents using the
// golang.org/x/net/html parser.
package htmltext

import (
	"strings"

	"github.com/wordcrawl/wordcrawl"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wordcrawl.TextExtractor at compile time.
var _ wordcrawl.TextExtractor = (*Extractor)(nil)

// Extractor extracts the rendered text of a page, skipping script and
// style elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text returns the visible text content of the document with text nodes
// joined by single spaces.
func (e *Extractor) Text(rawHTML string) (string, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", wordcrawl.Errorf(wordcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return b.String(), nil
}
