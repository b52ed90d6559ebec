package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/cli"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
	"github.com/theirongolddev/budgetsplit/internal/session"

	"github.com/spf13/cobra"
)

var flagOutput string

var calcCmd = &cobra.Command{
	Use:   "calc <income>",
	Short: "Print the 50/30/20 split for an income",
	Long: "Print the 50/30/20 split for an income. The income is read the same way\n" +
		"as the interactive field: only digits count, so \"Rp 5.000.000\" works.",
	Example:      "  budgetsplit calc 5000000\n  budgetsplit calc \"Rp 7.500.000\" --output json",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.OutputTable, "Output format: table, json or yaml")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(flagOutput)
	switch format {
	case cli.OutputTable, cli.OutputJSON, cli.OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", flagOutput)
	}

	mode, err := entryMode()
	if err != nil {
		return err
	}

	state := session.State{}.Input(pipeline.Normalizer{Mode: mode}, args[0])
	state, err = state.Calculate()
	if err != nil {
		logger.WithField("input", args[0]).Debug("calculate rejected")
		return fmt.Errorf("%s: %w", session.InvalidIncomeMessage, err)
	}

	alloc := state.Result()
	logger.WithField("amount", alloc.Income).Debug("allocation computed")

	out := cmd.OutOrStdout()
	if format != cli.OutputTable {
		return cli.WriteAllocation(out, alloc, format)
	}

	fmt.Fprintln(out, cli.RenderTitle("Kalkulator Keuangan Pribadi"))
	fmt.Fprintln(out)
	if err := cli.WriteAllocation(out, alloc, format); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderNote(cli.RuleSummary()))
	return nil
}
