// Package goquery provides an HTML link extractor built on
// PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wordcrawl/wordcrawl"
)

// Ensure Extractor implements wordcrawl.LinkExtractor at compile time.
var _ wordcrawl.LinkExtractor = (*Extractor)(nil)

// Extractor extracts anchor targets from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Hrefs returns the literal href attribute values of all <a> elements in
// document order. Anchors without an href and empty hrefs are skipped.
// Resolution against the page URL is the caller's concern.
func (e *Extractor) Hrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wordcrawl.Errorf(wordcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		hrefs = append(hrefs, href)
	})

	return hrefs, nil
}
