package wordcrawl

// LinkExtractor extracts hyperlink targets from an HTML page body.
type LinkExtractor interface {
	// Hrefs returns the literal href attribute values of all <a> elements
	// in the document, in document order. Anchors without an href are
	// skipped. The values are not resolved against any base URL.
	Hrefs(html string) ([]string, error)
}

// TextExtractor extracts visible text from an HTML page body.
// The crawler feeds the raw body to word counting by default; a
// TextExtractor narrows counting to rendered text only.
type TextExtractor interface {
	// Text returns the visible text content of the document,
	// excluding script and style elements.
	Text(html string) (string, error)
}
