package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/notes"
)

// AppModel is the main orchestrator that manages different views
type AppModel struct {
	currentView tea.Model
	collection  *notes.Collection
	cfg         *config.Config
	width       int
	height      int
}

// NewAppModel creates a new app model with the note list as initial view
func NewAppModel(cfg *config.Config) AppModel {
	collection := notes.NewCollection()

	return AppModel{
		currentView: NewNotesList(collection, cfg, 0, 0),
		collection:  collection,
		cfg:         cfg,
	}
}

// NewAppModelWithCollection creates an app model over an existing collection
func NewAppModelWithCollection(cfg *config.Config, collection *notes.Collection) AppModel {
	return AppModel{
		currentView: NewNotesList(collection, cfg, 0, 0),
		collection:  collection,
		cfg:         cfg,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Track window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}

	switch msg := msg.(type) {
	case OpenNoteMsg:
		// Open specific note in editor
		m.currentView = NewNoteEditor(m.collection, m.cfg, msg.noteID)
		// Send window size to new view
		if m.width > 0 && m.height > 0 {
			m.currentView, cmd = m.currentView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, tea.Batch(cmd, m.currentView.Init())

	case OpenFocusMsg:
		// Open specific note in fullscreen focus mode
		m.currentView = NewFocusView(m.collection, m.cfg, msg.noteID)
		if m.width > 0 && m.height > 0 {
			m.currentView, cmd = m.currentView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, tea.Batch(cmd, m.currentView.Init())

	case BackToListMsg:
		// Return to the note list
		m.currentView = NewNotesList(m.collection, m.cfg, m.width, m.height)
		return m, m.currentView.Init()
	}

	m.currentView, cmd = m.currentView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	return m.currentView.View()
}

type OpenNoteMsg struct {
	noteID string
}

type OpenFocusMsg struct {
	noteID string
}

type BackToListMsg struct{}
