package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/noteline/noteline/internal/commands"
	"github.com/noteline/noteline/internal/config"
	"github.com/noteline/noteline/internal/tui"
	"github.com/noteline/noteline/internal/utils"
	"github.com/noteline/noteline/internal/version"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   `nl`,
	Short: `Noteline is a terminal note-taking app with fuzzy tag selection.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, launch the note list TUI
		runApp()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config-file", "c", "", "config file (supports .yml, .json, .toml, .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add subcommands - they will get config when executed
	rootCmd.AddCommand(commands.NewNotesCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(version.NewInfoCommand())

	// Handle persistent flags
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if d, _ := cmd.Flags().GetBool("debug"); d {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Println("DEBUG logging enabled")
		}
	}

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Initialize config with defaults
	cfg = config.DefaultConfig()

	configFile := cfgFile
	if configFile == "" {
		// Fall back to the default location when it exists
		if _, err := os.Stat(cfg.ConfigFile); err == nil {
			configFile = cfg.ConfigFile
		}
	}

	config.LoadConfig(rootCmd.PersistentFlags(), configFile)

	// Unmarshal config values into the struct
	if err := config.K.Unmarshal("", cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %v\n", err)
		os.Exit(1)
	}
}

func runApp() {
	if !utils.IsTerminal() {
		fmt.Fprintln(os.Stderr, "noteline requires an interactive terminal")
		os.Exit(1)
	}

	app := tui.NewAppModel(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running noteline: %v\n", err)
		os.Exit(1)
	}
}
