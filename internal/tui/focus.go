package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/notes"
	"github.com/noteline/noteline/internal/utils"
)

// FocusModel is the fullscreen single-note view: just the text, a transient
// status line, and nothing else.
type FocusModel struct {
	collection *notes.Collection
	cfg        *config.Config
	noteID     string
	textarea   textarea.Model
	width      int
	height     int
	statusMsg  string
	err        error
}

var focusStatusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true)

func NewFocusView(collection *notes.Collection, cfg *config.Config, noteID string) FocusModel {
	ta := textarea.New()
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(utils.DetectTerminalWidth(80) - 4)
	ta.SetHeight(24)

	return FocusModel{
		collection: collection,
		cfg:        cfg,
		noteID:     noteID,
		textarea:   ta,
		statusMsg:  "focus mode • esc: back • ctrl+s: save",
	}
}

func (m FocusModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.loadNote,
		tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return FocusStatusClearMsg{}
		}),
	)
}

func (m FocusModel) loadNote() tea.Msg {
	note, err := m.collection.Note(m.noteID)
	if err != nil {
		return FocusErrorMsg{err: err}
	}
	return FocusLoadedMsg{content: note.Content}
}

func (m FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(msg.Height - 3)
		return m, nil

	case FocusLoadedMsg:
		m.textarea.SetValue(msg.content)
		m.textarea.CursorStart()
		return m, nil

	case FocusErrorMsg:
		m.err = msg.err
		return m, nil

	case FocusStatusClearMsg:
		m.statusMsg = ""
		return m, nil

	case FocusSavedMsg:
		m.statusMsg = "✓ Saved"
		delay := time.Duration(m.cfg.SavedIndicatorSecs) * time.Second
		return m, tea.Tick(delay, func(t time.Time) tea.Msg {
			return FocusStatusClearMsg{}
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Save on the way out so focus writing is never lost
			if err := m.collection.SetContent(m.noteID, m.textarea.Value()); err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg {
				return BackToListMsg{}
			}

		case "ctrl+s":
			return m, m.saveNote
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m FocusModel) saveNote() tea.Msg {
	if err := m.collection.SetContent(m.noteID, m.textarea.Value()); err != nil {
		return FocusErrorMsg{err: err}
	}
	return FocusSavedMsg{}
}

func (m FocusModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press 'esc' to go back\n", m.err)
	}

	var b strings.Builder

	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(focusStatusStyle.Render(m.statusMsg))
	}

	content := b.String()

	if m.width > 0 && m.height > 0 {
		style := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height)
		return style.Render(content)
	}

	return content
}

type FocusLoadedMsg struct {
	content string
}

type FocusErrorMsg struct {
	err error
}

type FocusSavedMsg struct{}

type FocusStatusClearMsg struct{}
