package tui

import (
	"testing"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/notes"
)

func TestAppViewSwitching(t *testing.T) {
	col := notes.NewCollection()
	note := col.CreateNote()
	m := NewAppModelWithCollection(config.DefaultConfig(), col)

	if _, ok := m.currentView.(NotesListModel); !ok {
		t.Fatalf("expected list view on startup, got %T", m.currentView)
	}

	updated, _ := m.Update(OpenNoteMsg{noteID: note.ID})
	m = updated.(AppModel)
	if _, ok := m.currentView.(NoteEditorModel); !ok {
		t.Fatalf("expected editor view after OpenNoteMsg, got %T", m.currentView)
	}

	updated, _ = m.Update(BackToListMsg{})
	m = updated.(AppModel)
	if _, ok := m.currentView.(NotesListModel); !ok {
		t.Fatalf("expected list view after BackToListMsg, got %T", m.currentView)
	}

	updated, _ = m.Update(OpenFocusMsg{noteID: note.ID})
	m = updated.(AppModel)
	if _, ok := m.currentView.(FocusModel); !ok {
		t.Fatalf("expected focus view after OpenFocusMsg, got %T", m.currentView)
	}
}
