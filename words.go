package wordcrawl

import "strings"

// IsWord reports whether a token qualifies as a word: non-empty and
// composed entirely of ASCII letters. Digits, punctuation, and non-ASCII
// scripts disqualify the whole token.
func IsWord(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Tokenize splits text on whitespace and returns the qualifying word
// tokens normalized to lower case.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsWord(f) {
			words = append(words, strings.ToLower(f))
		}
	}
	return words
}
