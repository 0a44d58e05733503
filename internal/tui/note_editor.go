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

type EditorMode int

const (
	ModeNormal EditorMode = iota
	ModeInsert
)

type NoteEditorModel struct {
	collection      *notes.Collection
	cfg             *config.Config
	noteID          string
	textarea        textarea.Model
	mode            EditorMode
	width           int
	height          int
	saveMsg         string
	err             error
	showQuitConfirm bool
	initialContent  string

	// Picker overlay state. cursorLine/cursorCol hold the textarea cursor
	// recorded when the picker opened, restored when it closes.
	picker     *TagPickerModel
	cursorLine int
	cursorCol  int
}

var (
	noteEditorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				Padding(1, 0)

	insertModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	normalModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	saveSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	editorHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func NewNoteEditor(collection *notes.Collection, cfg *config.Config, noteID string) NoteEditorModel {
	ta := textarea.New()
	ta.Placeholder = "Press 'i' to enter insert mode and start writing..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(utils.DetectTerminalWidth(80) - 4)
	ta.SetHeight(20)

	return NoteEditorModel{
		collection: collection,
		cfg:        cfg,
		noteID:     noteID,
		textarea:   ta,
		mode:       ModeNormal,
	}
}

func (m NoteEditorModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.loadNote,
	)
}

func (m NoteEditorModel) loadNote() tea.Msg {
	note, err := m.collection.Note(m.noteID)
	if err != nil {
		return NoteEditorErrorMsg{err: err}
	}

	return NoteLoadedMsg{content: note.Content}
}

func (m NoteEditorModel) saveNote() tea.Msg {
	if err := m.collection.SetContent(m.noteID, m.textarea.Value()); err != nil {
		return NoteEditorErrorMsg{err: err}
	}

	return NoteSavedMsg{}
}

func (m NoteEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(msg.Height - 7)
		return m, nil

	case NoteLoadedMsg:
		m.textarea.SetValue(msg.content)
		m.textarea.CursorStart()
		m.initialContent = msg.content
		return m, nil

	case NoteEditorErrorMsg:
		m.err = msg.err
		return m, nil

	case NoteSavedMsg:
		m.saveMsg = "✓ Saved"
		m.initialContent = m.textarea.Value()
		delay := time.Duration(m.cfg.SavedIndicatorSecs) * time.Second
		return m, tea.Tick(delay, func(t time.Time) tea.Msg {
			return ClearSaveMsg{}
		})

	case ClearSaveMsg:
		m.saveMsg = ""
		return m, nil

	case tea.KeyMsg:
		// Route all keys to the picker while it is open
		if m.picker != nil {
			picker, cmd, closed := m.picker.Update(msg)
			m.picker = &picker
			if closed {
				m.closePicker()
				return m, textarea.Blink
			}
			return m, cmd
		}

		if m.mode == ModeNormal {
			// Handle quit confirmation dialog
			if m.showQuitConfirm {
				switch msg.String() {
				case "y", "Y":
					return m, func() tea.Msg {
						return BackToListMsg{}
					}
				case "n", "N", "esc":
					m.showQuitConfirm = false
					return m, nil
				}
				return m, nil
			}

			switch msg.String() {
			case "q":
				if m.hasUnsavedChanges() {
					m.showQuitConfirm = true
					return m, nil
				}
				return m, func() tea.Msg {
					return BackToListMsg{}
				}

			case "ctrl+s":
				return m, m.saveNote

			case "t", "ctrl+t":
				m.openPicker()
				return m, textarea.Blink

			case "i":
				m.mode = ModeInsert
				m.textarea.Focus()
				return m, textarea.Blink

			case "a":
				m.mode = ModeInsert
				m.textarea.Focus()
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyEnd})
				return m, tea.Batch(cmd, textarea.Blink)

			case "h":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyLeft})
				return m, cmd

			case "j":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyDown})
				return m, cmd

			case "k":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyUp})
				return m, cmd

			case "l":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyRight})
				return m, cmd

			case "left", "right", "up", "down":
				m.textarea, cmd = m.textarea.Update(msg)
				return m, cmd

			case "0", "home":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyHome})
				return m, cmd

			case "$", "end":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyEnd})
				return m, cmd

			case "g":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
				return m, cmd

			case "G":
				m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
				return m, cmd
			}
			return m, nil
		}

		// Insert mode
		switch msg.String() {
		case "esc":
			m.mode = ModeNormal
			return m, nil

		case "ctrl+s":
			return m, m.saveNote

		case "ctrl+t":
			m.openPicker()
			return m, textarea.Blink

		case "#":
			// Hashtag trigger: open the picker and swallow the character
			if m.cfg.HashtagTrigger {
				m.openPicker()
				return m, textarea.Blink
			}
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd

		default:
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		}
	}

	if m.picker != nil {
		picker, cmd, _ := m.picker.Update(msg)
		m.picker = &picker
		return m, cmd
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// openPicker records the textarea cursor, blurs the editing surface, and
// opens a fresh selection session for this note.
func (m *NoteEditorModel) openPicker() {
	m.cursorLine = m.textarea.Line()
	m.cursorCol = m.textarea.LineInfo().ColumnOffset
	m.textarea.Blur()

	picker := NewTagPicker(m.collection, m.noteID)
	m.picker = &picker
}

// closePicker discards the session and returns focus to the textarea at the
// recorded cursor position, so typing resumes where the trigger fired.
func (m *NoteEditorModel) closePicker() {
	m.picker = nil
	m.textarea.Focus()

	current := m.textarea.Line()
	for current < m.cursorLine && current < m.textarea.LineCount()-1 {
		m.textarea.CursorDown()
		current++
	}
	for current > m.cursorLine && current > 0 {
		m.textarea.CursorUp()
		current--
	}
	m.textarea.SetCursor(m.cursorCol)
}

// hasUnsavedChanges checks if the current content differs from the initial/saved content
func (m *NoteEditorModel) hasUnsavedChanges() bool {
	return m.textarea.Value() != m.initialContent
}

func (m NoteEditorModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press 'q' to go back\n", m.err)
	}

	var b strings.Builder

	note, err := m.collection.Note(m.noteID)
	title := "📝 Note"
	if err == nil {
		title = fmt.Sprintf("📝 %s", note.Title())
	}
	titleStyle := noteEditorTitleStyle
	if m.cfg.AccentColor != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.cfg.AccentColor))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(" ")

	if m.mode == ModeInsert {
		b.WriteString(insertModeStyle.Render("-- INSERT --"))
	} else {
		b.WriteString(normalModeStyle.Render("-- NORMAL --"))
	}
	b.WriteString("\n")

	if tags := m.collection.TagsForNote(m.noteID); len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = "#" + t.Name
		}
		b.WriteString(noteTagStyle.Render(strings.Join(names, " ")))
		b.WriteString("\n")
	}

	if m.saveMsg != "" {
		b.WriteString(saveSuccessStyle.Render(m.saveMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	if m.picker != nil {
		b.WriteString(m.picker.View())
		b.WriteString("\n")
	}

	if m.showQuitConfirm {
		b.WriteString(confirmStyle.Render("⚠ You have unsaved changes. Quit anyway? (y/n)"))
		b.WriteString("\n\n")
	}

	var help string
	if m.picker != nil {
		help = "↑/↓: move • enter: toggle • tab: create • esc: done"
	} else if m.mode == ModeNormal {
		help = "hjkl: move • i/a: insert • t: tags • 0/$: line start/end • g/G: top/bottom • ctrl+s: save • q: back"
	} else {
		help = "esc: normal mode • #: tags • ctrl+s: save • ctrl+c: quit"
	}
	b.WriteString(editorHelpStyle.Render(help))

	content := b.String()

	if m.width > 0 && m.height > 0 {
		style := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height)
		return style.Render(content)
	}

	return content
}

type NoteLoadedMsg struct {
	content string
}

type NoteEditorErrorMsg struct {
	err error
}

type NoteSavedMsg struct{}

type ClearSaveMsg struct{}
