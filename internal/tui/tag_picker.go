package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noteline/noteline/internal/notes"
	"github.com/noteline/noteline/internal/tagselect"
)

// TagPickerModel is the inline tag-selection overlay. It owns the query
// input and a tagselect.Session; every key either dispatches a session
// command through the keymap or feeds the query input.
type TagPickerModel struct {
	collection *notes.Collection
	session    tagselect.Session
	input      textinput.Model
	keymap     tagselect.Keymap
	err        error
}

var (
	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerCreateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Italic(true)

	pickerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func NewTagPicker(collection *notes.Collection, noteID string) TagPickerModel {
	input := textinput.New()
	input.Placeholder = "Type to filter tags..."
	input.CharLimit = 100
	input.Focus()

	return TagPickerModel{
		collection: collection,
		session:    tagselect.Open(collection, noteID),
		input:      input,
		keymap:     tagselect.DefaultKeymap(),
	}
}

func (m TagPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update advances the picker. The returned bool reports whether the picker
// closed; the caller restores focus to the editing surface when it did.
func (m TagPickerModel) Update(msg tea.Msg) (TagPickerModel, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd, false
	}

	switch m.keymap.Lookup(keyMsg.String()) {
	case tagselect.CmdMoveUp:
		m.session = m.session.Move(-1)
		return m, nil, false

	case tagselect.CmdMoveDown:
		m.session = m.session.Move(1)
		return m, nil, false

	case tagselect.CmdToggle:
		session, closeReq, err := m.session.Toggle(m.collection)
		if err != nil {
			m.err = err
			return m, nil, false
		}
		m.session = session
		m.input.SetValue(m.session.Query)
		return m, nil, closeReq

	case tagselect.CmdConfirmCreate:
		session, err := m.session.ConfirmCreate(m.collection)
		if err != nil {
			m.err = err
			return m, nil, false
		}
		m.session = session
		m.input.SetValue(m.session.Query)
		return m, nil, false

	case tagselect.CmdClose:
		return m, nil, true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != m.session.Query {
		m.session = m.session.SetQuery(m.collection, m.input.Value())
	}
	return m, cmd, false
}

func (m TagPickerModel) View() string {
	var b strings.Builder

	b.WriteString("Tags\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	}

	if len(m.session.Candidates) == 0 {
		b.WriteString(pickerItemStyle.Render("No matching tags"))
		b.WriteString("\n")
	}

	for i, cand := range m.session.Candidates {
		line := m.renderCandidate(cand)
		if i == m.session.Highlight {
			b.WriteString(pickerSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(pickerItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pickerHelpStyle.Render("↑/↓: move • enter: toggle • tab: create • esc: done"))

	return pickerBoxStyle.Render(b.String())
}

func (m TagPickerModel) renderCandidate(cand tagselect.Candidate) string {
	if cand.Kind == tagselect.KindNew {
		return pickerCreateStyle.Render(fmt.Sprintf("+ create '%s'", cand.Name))
	}

	marker := "[ ]"
	if m.collection.NoteHasTag(m.session.NoteID, cand.Tag.ID) {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, cand.Tag.Name)
}
