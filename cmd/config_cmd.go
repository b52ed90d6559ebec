// Package cmd implements the budgetsplit CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetsplit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Entry mode: %s\n", cfg.General.EntryMode)
	if flagMode != "" {
		fmt.Fprintf(out, "    (overridden by --mode %s)\n", flagMode)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level: %s\n", config.LogLevel(cfg))
	if cfg.Logging.File != "" {
		fmt.Fprintf(out, "    File:  %s\n", cfg.Logging.File)
	} else {
		fmt.Fprintln(out, "    File:  not set (stderr)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `budgetsplit setup` to reconfigure.")
	return nil
}
