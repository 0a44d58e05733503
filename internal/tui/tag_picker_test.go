package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noteline/noteline/internal/notes"
	"github.com/noteline/noteline/internal/tagselect"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPickerFixture(t *testing.T, tagNames ...string) (*notes.Collection, notes.Note, TagPickerModel) {
	t.Helper()
	col := notes.NewCollection()
	for _, name := range tagNames {
		if _, err := col.CreateTag(name); err != nil {
			t.Fatalf("CreateTag(%q): %v", name, err)
		}
	}
	note := col.CreateNote()
	return col, note, NewTagPicker(col, note.ID)
}

func TestPickerTypingFiltersAndHighlights(t *testing.T) {
	_, _, picker := newPickerFixture(t, "work", "personal")

	picker, _, closed := picker.Update(keyRunes("w"))
	if closed {
		t.Fatal("picker should stay open while typing")
	}

	if got := len(picker.session.Candidates); got != 1 {
		t.Fatalf("expected 1 candidate, got %d", got)
	}
	if picker.session.Highlight != 0 {
		t.Errorf("expected highlight 0, got %d", picker.session.Highlight)
	}
	if picker.session.Candidates[0].Tag.Name != "work" {
		t.Errorf("expected 'work' candidate, got %q", picker.session.Candidates[0].Tag.Name)
	}
}

func TestPickerEnterTogglesAssociation(t *testing.T) {
	col, note, picker := newPickerFixture(t, "work")

	picker, _, _ = picker.Update(keyRunes("w"))
	picker, _, closed := picker.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if closed {
		t.Fatal("picker should stay open after a toggle")
	}
	tagID := col.Tags()[0].ID
	if !col.NoteHasTag(note.ID, tagID) {
		t.Error("expected tag to be associated after enter")
	}
	if picker.input.Value() != "" {
		t.Errorf("expected cleared query input, got %q", picker.input.Value())
	}
}

func TestPickerTabCreatesTag(t *testing.T) {
	col, note, picker := newPickerFixture(t, "work")

	for _, r := range "urgent" {
		picker, _, _ = picker.Update(keyRunes(string(r)))
	}
	if picker.session.Candidates[0].Kind != tagselect.KindNew {
		t.Fatalf("expected create candidate for 'urgent'")
	}

	picker, _, closed := picker.Update(tea.KeyMsg{Type: tea.KeyTab})
	if closed {
		t.Fatal("picker should stay open after creating a tag")
	}

	tags := col.Tags()
	if len(tags) != 2 {
		t.Fatalf("expected 2 registered tags, got %d", len(tags))
	}
	if tags[1].Name != "urgent" {
		t.Errorf("expected new tag 'urgent', got %q", tags[1].Name)
	}
	if !col.NoteHasTag(note.ID, tags[1].ID) {
		t.Error("expected new tag to be associated with the note")
	}
}

func TestPickerEnterOnCreateCandidateIsNoop(t *testing.T) {
	col, _, picker := newPickerFixture(t, "work")

	for _, r := range "xyz" {
		picker, _, _ = picker.Update(keyRunes(string(r)))
	}
	picker, _, _ = picker.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(col.Tags()) != 1 {
		t.Errorf("enter on a create candidate must not register a tag, got %d tags", len(col.Tags()))
	}
}

func TestPickerEscCloses(t *testing.T) {
	_, _, picker := newPickerFixture(t, "work")

	_, _, closed := picker.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed {
		t.Error("expected esc to close the picker")
	}
}

func TestPickerEnterOnEmptyListCloses(t *testing.T) {
	col := notes.NewCollection()
	note := col.CreateNote()
	picker := NewTagPicker(col, note.ID)

	_, _, closed := picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed {
		t.Error("expected enter on an empty candidate list to close the picker")
	}
}

func TestPickerNavigation(t *testing.T) {
	_, _, picker := newPickerFixture(t, "alpha", "beta", "gamma")

	picker, _, _ = picker.Update(tea.KeyMsg{Type: tea.KeyDown})
	if picker.session.Highlight != 0 {
		t.Errorf("down from unselected should land on 0, got %d", picker.session.Highlight)
	}

	picker, _, _ = picker.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if picker.session.Highlight != 1 {
		t.Errorf("ctrl+n should move down, got %d", picker.session.Highlight)
	}

	picker, _, _ = picker.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if picker.session.Highlight != 0 {
		t.Errorf("ctrl+p should move up, got %d", picker.session.Highlight)
	}

	picker, _, _ = picker.Update(tea.KeyMsg{Type: tea.KeyUp})
	if picker.session.Highlight != 2 {
		t.Errorf("up from first should wrap to last, got %d", picker.session.Highlight)
	}
}
