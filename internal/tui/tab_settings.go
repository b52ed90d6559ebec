package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/cli"
	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
	"github.com/theirongolddev/budgetsplit/internal/tui/components"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	settingsFieldTheme = iota
	settingsFieldEntryMode
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldEntryMode:
		modes := make([]string, 0, len(pipeline.Modes))
		for _, m := range pipeline.Modes {
			modes = append(modes, string(m))
		}
		ti.Placeholder = strings.Join(modes, " or ")
		ti.SetValue(string(a.normalizer.Mode))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(cfg.Logging.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if _, ok := theme.Lookup(val); !ok {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldEntryMode:
		mode, err := pipeline.ParseMode(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.General.EntryMode = string(mode)
		a.normalizer.Mode = mode
		// Redraw the income field in the new mode
		*a = a.applyInput(a.input.Value())
	case settingsFieldLogLevel:
		lvl, err := logrus.ParseLevel(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.Logging.Level = val
		a.log.SetLevel(lvl)
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.log.WithField("path", config.Path()).Debug("settings saved")
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Amount).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Theme", theme.Active.Name},
		{"Entry Mode", string(a.normalizer.Mode)},
		{"Log Level", a.log.GetLevel().String()},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	income := "(empty)"
	if !a.state.Entry.Empty() {
		income = cli.FormatCurrency(a.state.Income())
	}
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "(none)"
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Current income: ") + valueStyle.Render(income) + "\n")
	infoBody.WriteString(labelStyle.Render("Rule:           ") + valueStyle.Render(cli.RuleSummary()) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:       ") + valueStyle.Render(logFile) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
