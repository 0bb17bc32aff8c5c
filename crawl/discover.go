package crawl

import (
	"net/url"
	"strings"
)

// ResolveHref resolves a literal href value against the URL of the page it
// appeared on, per RFC 3986 relative resolution. Fragments are stripped so
// that URLs differing only by fragment collapse to one frontier entry.
// Returns "" for hrefs that cannot be parsed and for non-HTTP schemes
// such as javascript: and mailto:.
func ResolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
