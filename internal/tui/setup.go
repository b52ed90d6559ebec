package tui

import (
	"fmt"

	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers.
type setupValues struct {
	theme     string
	entryMode string
}

func defaultSetupValues(cfg config.Config) setupValues {
	return setupValues{
		theme:     cfg.Appearance.Theme,
		entryMode: cfg.General.EntryMode,
	}
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to budgetsplit!").
				Description("Split your monthly income with the 50/30/20 rule.\nLet's set up a few things."),
			huh.NewSelect[string]().
				Title("Income entry").
				Description("How the income field redraws as you type.").
				Options(
					huh.NewOption("Live grouping (5.000.000)", string(pipeline.ModeGrouped)),
					huh.NewOption("Plain digits (5000000)", string(pipeline.ModePlain)),
				).
				Value(&vals.entryMode),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithShowHelp(true)
}

// saveSetupConfig applies the wizard answers to the running app and persists them.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()
	if a.setupVals != nil {
		applySetupValues(&cfg, *a.setupVals)
	}

	theme.SetActive(cfg.Appearance.Theme)
	if mode, err := pipeline.ParseMode(cfg.General.EntryMode); err == nil {
		a.normalizer.Mode = mode
		*a = a.applyInput(a.input.Value())
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	a.log.WithField("path", config.Path()).Debug("setup config saved")
	return nil
}

func applySetupValues(cfg *config.Config, vals setupValues) {
	if vals.theme != "" {
		cfg.Appearance.Theme = theme.ByName(vals.theme).Name
	}
	if mode, err := pipeline.ParseMode(vals.entryMode); err == nil {
		cfg.General.EntryMode = string(mode)
	}
}

// RunSetup runs the setup wizard standalone and saves the result.
func RunSetup() (config.Config, error) {
	cfg := loadConfigOrDefault()
	vals := defaultSetupValues(cfg)

	if err := newSetupForm(&vals).Run(); err != nil {
		return cfg, fmt.Errorf("setup wizard: %w", err)
	}

	applySetupValues(&cfg, vals)
	if err := config.Save(cfg); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}
