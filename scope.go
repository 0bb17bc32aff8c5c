package wordcrawl

import (
	"net/url"
	"strings"
)

// Scope is the domain boundary of a crawl: the scheme and host of the
// first seed URL. A crawl never follows links outside its scope.
type Scope struct {
	scheme string
	host   string
}

// NewScope derives a Scope from a seed URL.
// Returns EINVALID if the URL cannot be parsed or has no scheme or host.
func NewScope(seed string) (Scope, error) {
	u, err := url.Parse(seed)
	if err != nil {
		return Scope{}, Errorf(EINVALID, "invalid seed URL %q: %v", seed, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Scope{}, Errorf(EINVALID, "seed URL %q has no scheme or host", seed)
	}
	return Scope{scheme: u.Scheme, host: u.Host}, nil
}

// Allows returns true if the URL has exactly the scope's scheme and host.
// Subdomains are considered different hosts.
func (s Scope) Allows(u *url.URL) bool {
	return u.Scheme == s.scheme && u.Host == s.host
}

// String returns the scope as scheme://host.
func (s Scope) String() string {
	return s.scheme + "://" + s.host
}

// IsPageLike reports whether a URL path looks like a navigable page
// rather than a static asset. A path qualifies when it is empty or
// contains no "." character (so /docs/intro qualifies, /logo.png and
// /index.html do not).
func IsPageLike(path string) bool {
	return path == "" || !strings.Contains(path, ".")
}
