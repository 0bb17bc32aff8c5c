// Package wordcrawl provides a same-domain web crawler that builds a
// word-frequency table from the pages it visits. Starting from one or more
// seed URLs it follows anchor links within the first seed's domain, counts
// normalized words on each fetched page, and persists the accumulated
// frequencies as a sorted word:count table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package wordcrawl
