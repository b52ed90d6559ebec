package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetsplit/internal/logging"
	"github.com/theirongolddev/budgetsplit/internal/tui"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	mode, err := entryMode()
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The alt screen owns stderr; only log when a file is configured.
	log := logger
	if logFile() == "" {
		log = logging.Discard()
	}

	app := tui.NewApp(mode, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
