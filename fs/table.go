// Package fs reads and writes word-frequency tables as plain text files.
//
// The on-disk format is one "word:count" record per line, counts in
// descending order. Lines are split on the first ":" so the format
// tolerates no escaping; table keys never contain ":" because words are
// letters only.
package fs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wordcrawl/wordcrawl"
)

// FormatEntries renders entries in the word:count line format.
func FormatEntries(entries []wordcrawl.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Word)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Count))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTable writes entries to path in the word:count line format,
// replacing any existing file.
func WriteTable(path string, entries []wordcrawl.Entry) error {
	return os.WriteFile(path, []byte(FormatEntries(entries)), 0644)
}

// ReadTable reads a word:count file back into a Table, preserving the
// file's line order as the table's insertion order so a later sort
// breaks ties the same way.
// Returns ENOTFOUND if the file does not exist and EINVALID for
// malformed records.
func ReadTable(path string) (*wordcrawl.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wordcrawl.Errorf(wordcrawl.ENOTFOUND, "table file %q does not exist", path)
		}
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()

	table := wordcrawl.NewTable()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		word, countStr, found := strings.Cut(text, ":")
		if !found {
			return nil, wordcrawl.Errorf(wordcrawl.EINVALID, "%s:%d: record has no separator", path, line)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count < 0 {
			return nil, wordcrawl.Errorf(wordcrawl.EINVALID, "%s:%d: bad count %q", path, line, countStr)
		}
		table.Add(word, count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}

	return table, nil
}
