package tagselect

import (
	"sort"
	"strings"

	"github.com/noteline/noteline/internal/notes"
)

// CandidateKind distinguishes rows in the picker list.
type CandidateKind int

const (
	// KindExisting is a registered tag that matched the query.
	KindExisting CandidateKind = iota
	// KindNew is the synthetic "create this tag" row.
	KindNew
)

// Candidate is one selectable row in the picker. For KindExisting, Tag is
// the matched registry tag and Score its match score. For KindNew, Name is
// the trimmed query text the new tag would be created with.
type Candidate struct {
	Kind  CandidateKind
	Tag   notes.Tag
	Name  string
	Score int
}

// BuildCandidates derives the candidate list for a query from the tag
// registry. Matches are sorted by score descending; ties keep registry
// order. A single "create" candidate is appended when the trimmed query is
// non-empty, no tag matched, and no tag name equals it case-insensitively.
// The function never mutates its inputs.
func BuildCandidates(tags []notes.Tag, query string) []Candidate {
	var out []Candidate
	for _, t := range tags {
		if ok, score := Match(t.Name, query); ok {
			out = append(out, Candidate{Kind: KindExisting, Tag: t, Name: t.Name, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(out) > 0 {
		return out
	}
	for _, t := range tags {
		if strings.EqualFold(t.Name, trimmed) {
			return out
		}
	}
	return append(out, Candidate{Kind: KindNew, Name: trimmed})
}
