package htmltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordcrawl/wordcrawl/htmltext"
)

func TestExtractor_Text(t *testing.T) {
	t.Parallel()

	t.Run("returns visible text only", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Title</title>
			<style>body { color: red }</style>
			<script>var hidden = true;</script>
		</head><body><h1>Heading</h1><p>Some <b>bold</b> text.</p></body></html>`

		text, err := htmltext.NewExtractor().Text(html)
		require.NoError(t, err)
		assert.Equal(t, "Title Heading Some bold text.", text)
	})

	t.Run("skips nested script content", func(t *testing.T) {
		t.Parallel()

		html := `<div>before<script>function f() { return "secret" }</script>after</div>`

		text, err := htmltext.NewExtractor().Text(html)
		require.NoError(t, err)
		assert.Equal(t, "before after", text)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		text, err := htmltext.NewExtractor().Text("")
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
