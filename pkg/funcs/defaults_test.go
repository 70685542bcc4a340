package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-funcs/pkg/funcs"
)

func TestValueOrDefault(t *testing.T) {
	assert.Equal(t, 5, funcs.ValueOrDefault(0, 5))
	assert.Equal(t, 3, funcs.ValueOrDefault(3, 5))
	assert.Equal(t, "def", funcs.ValueOrDefault("", "def"))
}

func TestValueOrElse(t *testing.T) {
	calls := 0
	def := func() int {
		calls++
		return 9
	}

	assert.Equal(t, 9, funcs.ValueOrElse(0, def))
	assert.Equal(t, 1, calls)

	// Supplier must not run for a non-zero value.
	assert.Equal(t, 4, funcs.ValueOrElse(4, def))
	assert.Equal(t, 1, calls)
}

func TestEmptyIfNil(t *testing.T) {
	assert.NotNil(t, funcs.EmptyIfNil[int](nil))
	assert.Empty(t, funcs.EmptyIfNil[int](nil))

	s := []int{1}
	assert.Equal(t, s, funcs.EmptyIfNil(s))

	assert.NotNil(t, funcs.EmptyMapIfNil[string, int](nil))
	m := map[string]int{"a": 1}
	assert.Equal(t, m, funcs.EmptyMapIfNil(m))
}

func TestBlankAsDefault(t *testing.T) {
	assert.Equal(t, "def", funcs.BlankAsDefault("", "def"))
	assert.Equal(t, "def", funcs.BlankAsDefault("   \t", "def"))
	assert.Equal(t, " x ", funcs.BlankAsDefault(" x ", "def"))
}

func TestTrimmedOrDefault(t *testing.T) {
	assert.Equal(t, "x", funcs.TrimmedOrDefault(" x ", "def"))
	assert.Equal(t, "def", funcs.TrimmedOrDefault("  ", "def"))
}

func TestNameFormatting(t *testing.T) {
	assert.Equal(t, "Retry Limit", funcs.SnakeToTitle("retry_limit"))
	assert.Equal(t, "A B", funcs.SnakeToTitle("a__b"))
	assert.Equal(t, "Max Retry Limit", funcs.TitleCaseName("MAX_RETRY_LIMIT"))
	assert.Equal(t, "Ok", funcs.TitleCaseName("OK"))
	assert.Equal(t, "", funcs.TitleCaseName(""))
}
