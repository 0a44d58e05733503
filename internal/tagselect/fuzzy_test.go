package tagselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchEmptyQuery(t *testing.T) {
	ok, score := Match("work", "")
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestMatchSubstring(t *testing.T) {
	ok, score := Match("work", "wo")
	assert.True(t, ok)
	assert.Equal(t, 1000, score)

	ok, score = Match("homework", "work")
	assert.True(t, ok)
	assert.Equal(t, 996, score)
}

func TestMatchCaseInsensitive(t *testing.T) {
	ok, score := Match("Work", "wORK")
	assert.True(t, ok)
	assert.Equal(t, 1000, score)
}

func TestMatchSubsequence(t *testing.T) {
	ok, score := Match("workout", "wkt")
	assert.True(t, ok)
	assert.Greater(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestMatchSubstringOutranksSubsequence(t *testing.T) {
	_, sub := Match("a very long tag name indeed", "tag")
	_, seq := Match("tug", "tg")
	assert.Greater(t, sub, seq)
}

func TestMatchNoMatch(t *testing.T) {
	ok, _ := Match("work", "xyz")
	assert.False(t, ok)

	ok, _ = Match("work", "krow")
	assert.False(t, ok)
}

func TestMatchEmptyText(t *testing.T) {
	ok, _ := Match("", "a")
	assert.False(t, ok)
}
