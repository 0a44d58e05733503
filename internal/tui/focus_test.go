package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/notes"
)

func updateFocus(t *testing.T, m FocusModel, msg tea.Msg) (FocusModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	focus, ok := updated.(FocusModel)
	if !ok {
		t.Fatalf("expected FocusModel, got %T", updated)
	}
	return focus, cmd
}

func TestFocusEscSavesAndReturnsToList(t *testing.T) {
	col := notes.NewCollection()
	note := col.CreateNote()
	_ = col.SetContent(note.ID, "draft")

	m := NewFocusView(col, config.DefaultConfig(), note.ID)
	m, _ = updateFocus(t, m, m.loadNote())
	m, _ = updateFocus(t, m, keyRunes("!"))

	_, cmd := updateFocus(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a navigation command from esc")
	}
	if _, ok := cmd().(BackToListMsg); !ok {
		t.Fatalf("expected BackToListMsg, got %T", cmd())
	}

	got, _ := col.Note(note.ID)
	if got.Content != "!draft" {
		t.Errorf("expected focus content to be saved on exit, got %q", got.Content)
	}
}

func TestFocusEscSurfacesSaveError(t *testing.T) {
	col := notes.NewCollection()
	note := col.CreateNote()

	m := NewFocusView(col, config.DefaultConfig(), note.ID)
	m, _ = updateFocus(t, m, m.loadNote())

	// The note disappears while focus mode is open
	_ = col.Archive(note.ID)

	m, cmd := updateFocus(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatal("expected no navigation when the save fails")
	}
	if m.err == nil {
		t.Error("expected the save error to be surfaced")
	}
}
