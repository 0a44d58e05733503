package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/notes"
	"github.com/noteline/noteline/internal/tagselect"
	"github.com/noteline/noteline/internal/utils"
)

type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterSearch
	FilterTag
)

type NotesListModel struct {
	collection       *notes.Collection
	cfg              *config.Config
	filteredNotes    []notes.Note
	cursor           int
	width            int
	height           int
	err              error
	searchInput      textinput.Model
	filterMode       FilterMode
	filterTagID      string
	bookmarkedOnly   bool
	hideCompleted    bool
	showingTags      bool
	tagCursor        int
	confirmArchive   bool
	archiveTargetIdx int
	statusMsg        string
	titleStyle       lipgloss.Style
	picker           *TagPickerModel
}

var (
	notesListTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				Padding(1, 0)

	noteItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	noteSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	noteTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Italic(true)

	noteCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Strikethrough(true)

	searchBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(0, 1)

	tagListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

	listStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	listHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)
)

func NewNotesList(collection *notes.Collection, cfg *config.Config, width, height int) NotesListModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes..."
	searchInput.CharLimit = 100

	titleStyle := notesListTitleStyle
	if cfg.AccentColor != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(cfg.AccentColor))
	}

	m := NotesListModel{
		collection:       collection,
		cfg:              cfg,
		searchInput:      searchInput,
		filterMode:       FilterNone,
		hideCompleted:    cfg.HideCompleted,
		archiveTargetIdx: -1,
		width:            width,
		height:           height,
		titleStyle:       titleStyle,
	}

	m.applyFilters()
	return m
}

// applyFilters recomputes the visible note list from the collection and the
// active filters, keeping the cursor in range.
func (m *NotesListModel) applyFilters() {
	all := m.collection.Notes()

	filtered := make([]notes.Note, 0, len(all))
	query := strings.TrimSpace(m.searchInput.Value())
	for _, n := range all {
		if m.hideCompleted && n.Completed {
			continue
		}
		if m.bookmarkedOnly && !n.Bookmarked {
			continue
		}
		if m.filterMode == FilterTag && m.filterTagID != "" && !n.HasTag(m.filterTagID) {
			continue
		}
		if m.filterMode == FilterSearch && query != "" {
			if ok, _ := tagselect.Match(n.Content, query); !ok {
				continue
			}
		}
		filtered = append(filtered, n)
	}
	m.filteredNotes = filtered

	if m.cursor >= len(m.filteredNotes) {
		m.cursor = len(m.filteredNotes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m NotesListModel) Init() tea.Cmd {
	return nil
}

func (m NotesListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ClearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		// Route all keys to the tag picker while it is open
		if m.picker != nil {
			picker, cmd, closed := m.picker.Update(msg)
			m.picker = &picker
			if closed {
				m.picker = nil
				m.applyFilters()
			}
			return m, cmd
		}

		// Handle archive confirmation
		if m.confirmArchive {
			switch msg.String() {
			case "y", "Y":
				if m.archiveTargetIdx >= 0 && m.archiveTargetIdx < len(m.filteredNotes) {
					note := m.filteredNotes[m.archiveTargetIdx]
					if err := m.collection.Archive(note.ID); err != nil {
						m.err = err
					} else {
						m.applyFilters()
					}
				}
				m.confirmArchive = false
				m.archiveTargetIdx = -1
				return m, nil

			case "n", "N", "esc":
				m.confirmArchive = false
				m.archiveTargetIdx = -1
				return m, nil
			}
			return m, nil
		}

		// Handle tag selection mode
		if m.showingTags {
			allTags := m.collection.Tags()
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit

			case "esc":
				m.showingTags = false
				return m, nil

			case "up", "k":
				if m.tagCursor > 0 {
					m.tagCursor--
				}
				return m, nil

			case "down", "j":
				if m.tagCursor < len(allTags)-1 {
					m.tagCursor++
				}
				return m, nil

			case "enter", "l":
				if len(allTags) > 0 && m.tagCursor < len(allTags) {
					m.filterTagID = allTags[m.tagCursor].ID
					m.filterMode = FilterTag
					m.cursor = 0
					m.applyFilters()
					m.showingTags = false
				}
				return m, nil
			}
			return m, nil
		}

		// Handle search input
		if m.filterMode == FilterSearch && m.searchInput.Focused() {
			switch msg.String() {
			case "esc":
				m.filterMode = FilterNone
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				m.applyFilters()
				return m, nil

			case "enter":
				m.searchInput.Blur()
				return m, nil

			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.applyFilters()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.filteredNotes)-1 {
				m.cursor++
			}
			return m, nil

		case "enter", "l":
			if m.cursor < len(m.filteredNotes) {
				noteID := m.filteredNotes[m.cursor].ID
				return m, func() tea.Msg {
					return OpenNoteMsg{noteID: noteID}
				}
			}
			return m, nil

		case "n":
			note := m.collection.CreateNote()
			return m, func() tea.Msg {
				return OpenNoteMsg{noteID: note.ID}
			}

		case "f":
			if m.cursor < len(m.filteredNotes) {
				noteID := m.filteredNotes[m.cursor].ID
				return m, func() tea.Msg {
					return OpenFocusMsg{noteID: noteID}
				}
			}
			return m, nil

		case "b":
			if m.cursor < len(m.filteredNotes) {
				if err := m.collection.ToggleBookmark(m.filteredNotes[m.cursor].ID); err != nil {
					m.err = err
				}
				m.applyFilters()
			}
			return m, nil

		case "c":
			if m.cursor < len(m.filteredNotes) {
				if err := m.collection.ToggleCompleted(m.filteredNotes[m.cursor].ID); err != nil {
					m.err = err
				}
				m.applyFilters()
			}
			return m, nil

		case "d":
			if m.cursor < len(m.filteredNotes) {
				m.confirmArchive = true
				m.archiveTargetIdx = m.cursor
			}
			return m, nil

		case "y":
			if m.cursor < len(m.filteredNotes) {
				note := m.filteredNotes[m.cursor]
				if err := utils.CopyToClipboard(note.Content); err != nil {
					m.err = err
					return m, nil
				}
				m.statusMsg = "✓ Copied to clipboard"
				return m, tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
					return ClearStatusMsg{}
				})
			}
			return m, nil

		case "t":
			if m.cursor < len(m.filteredNotes) {
				picker := NewTagPicker(m.collection, m.filteredNotes[m.cursor].ID)
				m.picker = &picker
				return m, textinput.Blink
			}
			return m, nil

		case "T":
			if len(m.collection.Tags()) > 0 {
				m.showingTags = true
				m.tagCursor = 0
			}
			return m, nil

		case "/":
			m.filterMode = FilterSearch
			m.searchInput.Focus()
			return m, textinput.Blink

		case "B":
			m.bookmarkedOnly = !m.bookmarkedOnly
			m.cursor = 0
			m.applyFilters()
			return m, nil

		case "H":
			m.hideCompleted = !m.hideCompleted
			m.cursor = 0
			m.applyFilters()
			return m, nil

		case "esc":
			// Clear any active filter
			m.filterMode = FilterNone
			m.filterTagID = ""
			m.searchInput.SetValue("")
			m.applyFilters()
			return m, nil
		}
	}

	if m.picker != nil {
		picker, cmd, _ := m.picker.Update(msg)
		m.picker = &picker
		return m, cmd
	}

	return m, nil
}

func (m NotesListModel) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("🗒  Notes"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	}

	if m.statusMsg != "" {
		b.WriteString(listStatusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	if m.filterMode == FilterSearch {
		b.WriteString(searchBarStyle.Render(m.searchInput.View()))
		b.WriteString("\n")
	}

	if m.filterMode == FilterTag && m.filterTagID != "" {
		if tag, err := m.collection.TagByID(m.filterTagID); err == nil {
			b.WriteString(noteTagStyle.Render(fmt.Sprintf("Filtered by tag: %s (esc to clear)", tag.Name)))
			b.WriteString("\n")
		}
	}

	if m.showingTags {
		b.WriteString(m.renderTagList())
		return b.String()
	}

	b.WriteString("\n")

	if len(m.filteredNotes) == 0 {
		b.WriteString(noteItemStyle.Render("No notes. Press 'n' to create one."))
		b.WriteString("\n")
	}

	for i, note := range m.filteredNotes {
		line := m.renderNoteLine(note)
		if i == m.cursor {
			b.WriteString(noteSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(noteItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.picker != nil {
		b.WriteString("\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
	}

	if m.confirmArchive && m.archiveTargetIdx < len(m.filteredNotes) {
		b.WriteString("\n")
		target := m.filteredNotes[m.archiveTargetIdx]
		b.WriteString(confirmStyle.Render(fmt.Sprintf("⚠ Archive '%s'? This cannot be undone. (y/n)", target.Title())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "j/k: move • enter: edit • n: new • b: bookmark • c: complete • d: archive • t: tags • T: filter tag • /: search • B: bookmarked • H: hide done • f: focus • y: copy • q: quit"
	b.WriteString(listHelpStyle.Render(help))

	return b.String()
}

func (m NotesListModel) renderNoteLine(note notes.Note) string {
	var parts []string

	if note.Bookmarked {
		parts = append(parts, "★")
	} else {
		parts = append(parts, " ")
	}

	title := note.Title()
	if note.Completed {
		title = noteCompletedStyle.Render(title)
	}
	parts = append(parts, title)

	tags := m.collection.TagsForNote(note.ID)
	if len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = "#" + t.Name
		}
		parts = append(parts, noteTagStyle.Render(strings.Join(names, " ")))
	}

	return strings.Join(parts, " ")
}

func (m NotesListModel) renderTagList() string {
	var b strings.Builder

	b.WriteString("Filter by tag:\n\n")
	for i, tag := range m.collection.Tags() {
		if i == m.tagCursor {
			b.WriteString(noteSelectedStyle.Render("> " + tag.Name))
		} else {
			b.WriteString(noteItemStyle.Render(tag.Name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listHelpStyle.Render("j/k: move • enter: select • esc: cancel"))

	return tagListStyle.Render(b.String())
}

type ClearStatusMsg struct{}
