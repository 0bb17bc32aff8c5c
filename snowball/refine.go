// Package snowball refines frequency tables by stopword removal,
// minimum-count filtering, and Snowball stemming.
package snowball

import (
	"github.com/kljensen/snowball/english"
	"github.com/wordcrawl/wordcrawl"
)

// Options controls how a frequency table is refined.
type Options struct {
	// MinCount drops words whose count is MinCount or lower. Zero keeps
	// every word.
	MinCount int

	// Stopwords is the set of words to drop. Nil means no stopword
	// filtering; use DefaultStopwords for the built-in English set.
	Stopwords map[string]struct{}

	// Stem reduces words to their Snowball English stem, merging counts
	// of words that share a stem.
	Stem bool
}

// Refine produces a new table by applying the given options to each
// entry of the input table in its sorted order. Words merged by
// stemming accumulate their counts under the stem.
func Refine(table *wordcrawl.Table, opts Options) *wordcrawl.Table {
	out := wordcrawl.NewTable()
	for _, e := range table.Entries() {
		if e.Count <= opts.MinCount {
			continue
		}
		if _, stop := opts.Stopwords[e.Word]; stop {
			continue
		}
		word := e.Word
		if opts.Stem {
			word = english.Stem(word, true)
		}
		out.Add(word, e.Count)
	}
	return out
}
