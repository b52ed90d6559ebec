package cmd

import (
	"os"

	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/logging"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagMode     string
	flagLogLevel string
	flagLogFile  string
)

// Shared by all commands; set up in PersistentPreRunE.
var (
	appCfg   config.Config
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "budgetsplit",
	Short: "50/30/20 personal budget calculator",
	Long:  "Split a monthly income into needs, wants and savings with the 50/30/20 rule.",
	RunE:  runTUI,

	PersistentPreRunE: prepare,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and releases the log file whether or not
// the command failed.
func run() error {
	err := rootCmd.Execute()
	if cerr := teardown(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Income entry mode: grouped or plain (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

// prepare loads the config and builds the shared logger. A broken config file
// is not fatal; defaults are used and a warning is logged.
func prepare(cmd *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()
	appCfg = cfg

	level := flagLogLevel
	if level == "" {
		level = config.LogLevel(cfg)
	}

	log, closeFn, err := logging.New(logging.Options{
		Level:  level,
		File:   logFile(),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger, closeLog = log, closeFn

	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("using default config")
	}
	logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  config.Path(),
	}).Debug("starting")
	return nil
}

func teardown() error {
	err := closeLog()
	logger, closeLog = logging.Discard(), func() error { return nil }
	return err
}

// logFile returns the --log-file flag, falling back to the config.
func logFile() string {
	if flagLogFile != "" {
		return flagLogFile
	}
	return appCfg.Logging.File
}

// entryMode resolves the --mode flag, falling back to the config.
func entryMode() (pipeline.Mode, error) {
	if flagMode != "" {
		return pipeline.ParseMode(flagMode)
	}
	return pipeline.ParseMode(appCfg.General.EntryMode)
}
