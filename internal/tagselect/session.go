package tagselect

import (
	"github.com/noteline/noteline/internal/notes"
)

// NoHighlight is the highlight value meaning no candidate is selected.
const NoHighlight = -1

// Store is the slice of the note collection the engine needs: the tag
// registry and the association operations for the target note.
type Store interface {
	Tags() []notes.Tag
	NoteHasTag(noteID, tagID string) bool
	ToggleNoteTag(noteID, tagID string) error
	CreateTag(name string) (notes.Tag, error)
}

// Session is the state of one tag-selection interaction against a single
// note. Sessions are values; every transition returns a new Session and
// leaves the receiver untouched.
type Session struct {
	NoteID     string
	Query      string
	Highlight  int
	Candidates []Candidate
}

// Open starts a session for the given note with an empty query. The full
// registry is listed and nothing is highlighted until the user types or
// navigates.
func Open(store Store, noteID string) Session {
	return Session{
		NoteID:     noteID,
		Highlight:  NoHighlight,
		Candidates: BuildCandidates(store.Tags(), ""),
	}
}

// SetQuery replaces the query and rebuilds the candidate list. Typing a
// non-empty query highlights the top candidate; clearing the query keeps
// the previous highlight where the shrunken-or-grown list allows it.
func (s Session) SetQuery(store Store, query string) Session {
	s.Query = query
	s.Candidates = BuildCandidates(store.Tags(), query)
	switch {
	case len(s.Candidates) == 0:
		s.Highlight = NoHighlight
	case query != "":
		s.Highlight = 0
	case s.Highlight >= len(s.Candidates):
		s.Highlight = len(s.Candidates) - 1
	}
	return s
}

// Move shifts the highlight by dir (+1 down, -1 up) with wraparound. From
// the unselected state, moving down lands on the first candidate and moving
// up on the last. Empty lists are untouched.
func (s Session) Move(dir int) Session {
	n := len(s.Candidates)
	if n == 0 {
		return s
	}
	if s.Highlight == NoHighlight {
		if dir > 0 {
			s.Highlight = 0
		} else {
			s.Highlight = n - 1
		}
		return s
	}
	s.Highlight = ((s.Highlight+dir)%n + n) % n
	return s
}

// Toggle flips the highlighted tag's association on the target note. The
// query is cleared afterwards so the next selection starts fresh. On a
// "create" candidate or with nothing highlighted it is a no-op; on an empty
// candidate list it requests that the caller close the picker.
//
// When the toggle consumed the only match of a non-empty query, the
// highlight advances to the first registry tag not yet associated with the
// note, so repeated type-and-select runs without extra navigation.
func (s Session) Toggle(store Store) (Session, bool, error) {
	if len(s.Candidates) == 0 {
		return s, true, nil
	}
	if s.Highlight == NoHighlight {
		return s, false, nil
	}
	cand := s.Candidates[s.Highlight]
	if cand.Kind != KindExisting {
		return s, false, nil
	}
	if err := store.ToggleNoteTag(s.NoteID, cand.Tag.ID); err != nil {
		return s, false, err
	}
	advance := s.Query != "" && len(s.Candidates) == 1

	s.Query = ""
	s.Candidates = BuildCandidates(store.Tags(), "")
	if s.Highlight >= len(s.Candidates) {
		s.Highlight = len(s.Candidates) - 1
	}
	if advance {
		s.Highlight = NoHighlight
		for i, c := range s.Candidates {
			if !store.NoteHasTag(s.NoteID, c.Tag.ID) {
				s.Highlight = i
				break
			}
		}
	}
	return s, false, nil
}

// ConfirmCreate creates the tag named by the highlighted "create" candidate,
// associates it with the target note, and clears the query. Any other
// highlight state is a no-op.
func (s Session) ConfirmCreate(store Store) (Session, error) {
	if s.Highlight == NoHighlight || s.Highlight >= len(s.Candidates) {
		return s, nil
	}
	cand := s.Candidates[s.Highlight]
	if cand.Kind != KindNew {
		return s, nil
	}
	tag, err := store.CreateTag(cand.Name)
	if err != nil {
		return s, err
	}
	if err := store.ToggleNoteTag(s.NoteID, tag.ID); err != nil {
		return s, err
	}
	s.Query = ""
	s.Candidates = BuildCandidates(store.Tags(), "")
	s.Highlight = NoHighlight
	return s, nil
}
