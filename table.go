package wordcrawl

import "sort"

// Entry is a single word-frequency record.
type Entry struct {
	Word  string
	Count int
}

// Table is a word-frequency table. Counts are updated with an explicit
// increment-or-insert operation; absent words count as zero. First
// insertion order is preserved so that the descending-count sort in
// Entries can break ties deterministically.
type Table struct {
	counts map[string]int
	order  []string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Inc increments the count for word by one, inserting it at zero first
// if absent.
func (t *Table) Inc(word string) {
	t.Add(word, 1)
}

// Add increments the count for word by n, inserting it at zero first
// if absent.
func (t *Table) Add(word string, n int) {
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word] += n
}

// Count returns the count for word, or zero if absent.
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words in the table.
func (t *Table) Len() int {
	return len(t.counts)
}

// Entries returns the table's records sorted by count descending.
// The sort is stable: words with equal counts keep their relative
// insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
