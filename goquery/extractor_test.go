package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordcrawl/wordcrawl/goquery"
)

func TestExtractor_Hrefs(t *testing.T) {
	t.Parallel()

	t.Run("returns literal hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/first">First</a>
			<p>text <a href="https://example.com/second">Second</a></p>
			<a href="relative/third">Third</a>
		</body></html>`

		hrefs, err := goquery.NewExtractor().Hrefs(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/first", "https://example.com/second", "relative/third"}, hrefs)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">Top</a><a href="/linked">Linked</a><a href="">Empty</a>`

		hrefs, err := goquery.NewExtractor().Hrefs(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/linked"}, hrefs)
	})

	t.Run("keeps duplicate hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/page">one</a><a href="/page">two</a>`

		hrefs, err := goquery.NewExtractor().Hrefs(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/page", "/page"}, hrefs)
	})

	t.Run("no anchors yields no hrefs", func(t *testing.T) {
		t.Parallel()

		hrefs, err := goquery.NewExtractor().Hrefs("<p>plain text</p>")
		require.NoError(t, err)
		assert.Empty(t, hrefs)
	})
}
