package tagselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteline/noteline/internal/notes"
)

func registry(names ...string) []notes.Tag {
	tags := make([]notes.Tag, len(names))
	for i, n := range names {
		tags[i] = notes.Tag{ID: n, Name: n}
	}
	return tags
}

func TestBuildCandidatesSubstringMatch(t *testing.T) {
	cands := BuildCandidates(registry("work"), "wo")

	require.Len(t, cands, 1)
	assert.Equal(t, KindExisting, cands[0].Kind)
	assert.Equal(t, "work", cands[0].Tag.Name)
	assert.Equal(t, 1000, cands[0].Score)
}

func TestBuildCandidatesCreateWhenNothingMatches(t *testing.T) {
	cands := BuildCandidates(registry("work"), "xyz")

	require.Len(t, cands, 1)
	assert.Equal(t, KindNew, cands[0].Kind)
	assert.Equal(t, "xyz", cands[0].Name)
}

func TestBuildCandidatesNoCreateForEmptyQuery(t *testing.T) {
	cands := BuildCandidates(registry("work"), "")
	require.Len(t, cands, 1)
	assert.Equal(t, KindExisting, cands[0].Kind)

	cands = BuildCandidates(registry("work"), "   ")
	for _, c := range cands {
		assert.NotEqual(t, KindNew, c.Kind)
	}
}

func TestBuildCandidatesNoCreateOnExactEqual(t *testing.T) {
	// A whitespace-padded query can miss the fuzzy match while its trimmed
	// form names an existing tag; no create row in that case.
	cands := BuildCandidates(registry("Work"), " work ")
	for _, c := range cands {
		assert.NotEqual(t, KindNew, c.Kind)
	}
}

func TestBuildCandidatesSortedNonIncreasing(t *testing.T) {
	tags := registry("workout", "work", "homework", "word", "personal")
	for _, q := range []string{"", "w", "wo", "ork", "wk"} {
		cands := BuildCandidates(tags, q)
		for i := 1; i < len(cands); i++ {
			assert.GreaterOrEqual(t, cands[i-1].Score, cands[i].Score,
				"query %q: scores must be non-increasing", q)
		}
	}
}

func TestBuildCandidatesStableTieBreak(t *testing.T) {
	cands := BuildCandidates(registry("alpha", "beta", "gamma"), "")

	require.Len(t, cands, 3)
	assert.Equal(t, "alpha", cands[0].Tag.Name)
	assert.Equal(t, "beta", cands[1].Tag.Name)
	assert.Equal(t, "gamma", cands[2].Tag.Name)
}

func TestBuildCandidatesEmptyRegistry(t *testing.T) {
	assert.Empty(t, BuildCandidates(nil, ""))

	cands := BuildCandidates(nil, "new")
	require.Len(t, cands, 1)
	assert.Equal(t, KindNew, cands[0].Kind)
}
