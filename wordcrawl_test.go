package wordcrawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordcrawl/wordcrawl"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wordcrawl.Errorf(wordcrawl.ENOTFOUND, "run %q not found", "test")

	assert.Equal(t, wordcrawl.ENOTFOUND, wordcrawl.ErrorCode(err))
	assert.Equal(t, "run \"test\" not found", wordcrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordcrawl.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordcrawl.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wordcrawl.EINTERNAL, wordcrawl.ErrorCode(assert.AnError))
}
