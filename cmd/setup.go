package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := tui.RunSetup()
	if err != nil {
		return err
	}
	logger.WithField("path", config.Path()).Info("config saved")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintf(out, "    Entry mode: %s\n", cfg.General.EntryMode)
	fmt.Fprintf(out, "    Theme:      %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Run `budgetsplit setup` anytime to reconfigure.")
	return nil
}
