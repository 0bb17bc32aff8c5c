package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordcrawl/wordcrawl/bloom"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/a"), "fresh filter should not contain the URL")

	f.Add("https://example.com/a")
	assert.True(t, f.Test("https://example.com/a"))
	assert.False(t, f.Test("https://example.com/b"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	for i := 0; i < 5000; i++ {
		f.Add(fmt.Sprintf("https://example.com/page/%d", i))
	}
	for i := 0; i < 5000; i++ {
		assert.True(t, f.Test(fmt.Sprintf("https://example.com/page/%d", i)))
	}
}
