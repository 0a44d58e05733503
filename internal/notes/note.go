package notes

import (
	"strings"
	"time"
)

// Tag is a named label that can be associated with zero or more notes.
// Tags are immutable after creation and are never deleted.
type Tag struct {
	ID   string
	Name string
}

// Note is a single free-text note. Tag associations are kept as a set of
// tag IDs; a tag is either associated or not.
type Note struct {
	ID         string
	Content    string
	TagIDs     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Bookmarked bool
	Completed  bool
}

// HasTag reports whether the note is associated with the given tag ID.
func (n Note) HasTag(tagID string) bool {
	for _, id := range n.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Title returns the first line of the note content, trimmed, for list display.
func (n Note) Title() string {
	line := n.Content
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "(empty note)"
	}
	return line
}
