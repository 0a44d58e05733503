package notes

import (
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrTagNotFound  = errors.New("tag not found")
	ErrEmptyTagName = errors.New("tag name is empty")
	ErrDuplicateTag = errors.New("tag already exists")
)

// Collection owns the in-memory note list and the tag registry for one
// session. Notes keep insertion order; the tag registry keeps creation order.
// State is not persisted anywhere and is discarded when the program exits.
type Collection struct {
	notes []Note
	tags  []Tag
	now   func() time.Time
}

func NewCollection() *Collection {
	return &Collection{now: time.Now}
}

// CreateNote appends a new empty note and returns it.
func (c *Collection) CreateNote() Note {
	ts := c.now()
	n := Note{
		ID:        ulid.Make().String(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	c.notes = append(c.notes, n)
	return n
}

// Notes returns the notes in insertion order. The returned notes are deep
// copies; mutations go through Collection methods.
func (c *Collection) Notes() []Note {
	out := make([]Note, len(c.notes))
	for i, n := range c.notes {
		out[i] = cloneNote(n)
	}
	return out
}

// Note returns the note with the given ID.
func (c *Collection) Note(id string) (Note, error) {
	i := c.indexOf(id)
	if i < 0 {
		return Note{}, ErrNoteNotFound
	}
	return cloneNote(c.notes[i]), nil
}

// cloneNote copies a note including its TagIDs backing array, so callers
// never observe later in-place association changes.
func cloneNote(n Note) Note {
	n.TagIDs = append([]string(nil), n.TagIDs...)
	return n
}

// SetContent replaces a note's content and bumps its modified timestamp.
func (c *Collection) SetContent(id, content string) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	c.notes[i].Content = content
	c.notes[i].UpdatedAt = c.now()
	return nil
}

// ToggleBookmark flips the bookmarked flag on a note.
func (c *Collection) ToggleBookmark(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	c.notes[i].Bookmarked = !c.notes[i].Bookmarked
	return nil
}

// ToggleCompleted flips the completed flag on a note.
func (c *Collection) ToggleCompleted(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	c.notes[i].Completed = !c.notes[i].Completed
	return nil
}

// Archive destroys a note. There is no undo.
func (c *Collection) Archive(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	c.notes = append(c.notes[:i], c.notes[i+1:]...)
	return nil
}

// CreateTag registers a new tag. Names are trimmed; empty names and
// case-insensitive duplicates are rejected.
func (c *Collection) CreateTag(name string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, ErrEmptyTagName
	}
	for _, t := range c.tags {
		if strings.EqualFold(t.Name, name) {
			return Tag{}, ErrDuplicateTag
		}
	}
	t := Tag{ID: ulid.Make().String(), Name: name}
	c.tags = append(c.tags, t)
	return t, nil
}

// Tags returns the tag registry in creation order.
func (c *Collection) Tags() []Tag {
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// TagByID returns the registered tag with the given ID.
func (c *Collection) TagByID(id string) (Tag, error) {
	for _, t := range c.tags {
		if t.ID == id {
			return t, nil
		}
	}
	return Tag{}, ErrTagNotFound
}

// NoteHasTag reports whether the note is associated with the tag.
func (c *Collection) NoteHasTag(noteID, tagID string) bool {
	i := c.indexOf(noteID)
	if i < 0 {
		return false
	}
	return c.notes[i].HasTag(tagID)
}

// ToggleNoteTag flips a tag association on a note: add if absent, remove if
// present. The tag must already exist in the registry; associations never
// reference unregistered tags.
func (c *Collection) ToggleNoteTag(noteID, tagID string) error {
	i := c.indexOf(noteID)
	if i < 0 {
		return ErrNoteNotFound
	}
	if _, err := c.TagByID(tagID); err != nil {
		return err
	}
	ids := c.notes[i].TagIDs
	for j, id := range ids {
		if id == tagID {
			c.notes[i].TagIDs = append(ids[:j], ids[j+1:]...)
			return nil
		}
	}
	c.notes[i].TagIDs = append(ids, tagID)
	return nil
}

// TagsForNote returns the registered tags associated with a note, in
// registry order.
func (c *Collection) TagsForNote(noteID string) []Tag {
	i := c.indexOf(noteID)
	if i < 0 {
		return nil
	}
	var out []Tag
	for _, t := range c.tags {
		if c.notes[i].HasTag(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByTag returns the notes associated with the given tag, in
// insertion order.
func (c *Collection) FilterByTag(tagID string) []Note {
	var out []Note
	for _, n := range c.notes {
		if n.HasTag(tagID) {
			out = append(out, cloneNote(n))
		}
	}
	return out
}

func (c *Collection) indexOf(id string) int {
	for i := range c.notes {
		if c.notes[i].ID == id {
			return i
		}
	}
	return -1
}
