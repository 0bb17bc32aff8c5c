package wordcrawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordcrawl/wordcrawl"
)

func TestIsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{"cat", true},
		{"Cat", true},
		{"CAT", true},
		{"", false},
		{"cat1", false},
		{"don't", false},
		{"hy-phen", false},
		{"<html>", false},
		{"naïve", false},
		{"слово", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wordcrawl.IsWord(tt.token))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("splits on whitespace and lowercases", func(t *testing.T) {
		t.Parallel()

		words := wordcrawl.Tokenize("The Cat sat\n on\tthe Mat")
		assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat"}, words)
	})

	t.Run("drops tokens with non-letters", func(t *testing.T) {
		t.Parallel()

		words := wordcrawl.Tokenize("version 1.2 of the <b>api</b> costs $5")
		assert.Equal(t, []string{"version", "of", "the"}, words)
	})

	t.Run("empty input yields no words", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordcrawl.Tokenize("   \n\t "))
	})
}
