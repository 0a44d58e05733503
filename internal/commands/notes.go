package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/tui"
)

// NewNotesCmd creates the notes command
func NewNotesCmd(getConfig func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Browse and manage notes",
		Long:  `Open the note list to view, tag, and manage your notes.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := getConfig()
			runNotes(cfg)
		},
	}

	return cmd
}

func runNotes(cfg *config.Config) {
	app := tui.NewAppModel(cfg)

	// Start the TUI
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running notes TUI: %v\n", err)
		os.Exit(1)
	}
}
