package fs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wordcrawl/wordcrawl"
)

// SortLines reads the lines of inPath, sorts them lexicographically, and
// writes them to outPath. A trailing newline on the input does not
// produce an extra empty line.
// Returns ENOTFOUND if the input file does not exist.
func SortLines(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		if os.IsNotExist(err) {
			return wordcrawl.Errorf(wordcrawl.ENOTFOUND, "input file %q does not exist", inPath)
		}
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if len(data) == 0 {
		return os.WriteFile(outPath, nil, 0644)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	sort.Strings(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(outPath, []byte(b.String()), 0644)
}
