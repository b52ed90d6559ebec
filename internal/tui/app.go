// Package tui provides the interactive Bubble Tea widget for budgetsplit.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/cli"
	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
	"github.com/theirongolddev/budgetsplit/internal/session"
	"github.com/theirongolddev/budgetsplit/internal/tui/components"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	tabCalculator = 0
	tabSettings   = 1
)

// App is the root Bubble Tea model.
type App struct {
	// Calculator state, owned here and replaced by each handler
	state      session.State
	normalizer pipeline.Normalizer
	input      textinput.Model

	log *logrus.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	settings settingsState

	// First-run setup (huh form). The form writes its answers through
	// setupVals, so every copy of App must share the same pointer.
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 96
	maxContentWidth  = 140

	minContentHeight = 5 // minimum content area height
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newIncomeInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Masukkan pendapatan"
	ti.Prompt = "Rp "
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()
	return ti
}

// NewApp creates a new TUI app model.
func NewApp(mode pipeline.Mode, log *logrus.Logger) App {
	needSetup := !config.Exists()

	a := App{
		normalizer: pipeline.Normalizer{Mode: mode},
		input:      newIncomeInput(),
		log:        log,
		needSetup:  needSetup,
	}
	if needSetup {
		vals := defaultSetupValues(loadConfigOrDefault())
		a.setupVals = &vals
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion, // Enable mouse support
		textinput.Blink,
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.state.Alert != "" || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// The invalid-income alert blocks until any key is pressed
		if a.state.Alert != "" {
			a.state = a.state.DismissAlert()
			return a, nil
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabCalculator {
			return a.updateCalculator(msg)
		}

		// Settings tab navigation (non-editing mode)
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		case "q":
			return a, tea.Quit
		}
		return a.updateTabKeys(key), nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink for whichever input is live
	var cmd tea.Cmd
	if a.activeTab == tabSettings && a.settings.editing {
		a.settings.input, cmd = a.settings.input.Update(msg)
	} else {
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

// updateCalculator handles keys on the calculator tab. The income field only
// ever holds digits and separators, so plain letters are free to act as
// commands; everything else is an edit.
func (a App) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !msg.Paste {
		switch key := msg.String(); key {
		case "enter":
			return a.calculate(), nil
		case "r", "esc":
			if a.state.Visible {
				return a.reset(), nil
			}
			return a, nil
		case "q":
			return a, tea.Quit
		case "x", "tab", "left", "right", "shift+tab":
			return a.updateTabKeys(key), nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a = a.applyInput(a.input.Value())
	return a, cmd
}

// applyInput runs the raw field content through the normalizer and redraws
// the field with the normalized display.
func (a App) applyInput(raw string) App {
	a.state = a.state.Input(a.normalizer, raw)
	a.input.SetValue(a.state.Entry.Display)
	a.input.CursorEnd()

	a.log.WithFields(logrus.Fields{
		"raw":    raw,
		"amount": a.state.Income(),
	}).Debug("income normalized")
	return a
}

func (a App) calculate() App {
	next, err := a.state.Calculate()
	a.state = next
	if err != nil {
		a.log.WithField("amount", a.state.Income()).Info("calculate rejected: " + err.Error())
		return a
	}
	a.log.WithField("amount", a.state.Income()).Debug("results revealed")
	return a
}

func (a App) reset() App {
	a.state = a.state.Reset()
	a.input.Reset()
	a.log.Debug("calculator reset")
	return a
}

func (a App) updateTabKeys(key string) App {
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a
		}
	}

	switch key {
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.log.WithError(err).Warn("saving setup config")
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.state.Alert != "" {
		return a.viewAlert()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  budgetsplit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewAlert() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Alert).
		Background(t.Surface).
		Padding(1, 4)

	msgStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	card := cardStyle.Render(
		msgStyle.Render("⚠ "+a.state.Alert) + "\n\n" +
			dimStyle.Render("Tekan tombol apa saja untuk kembali"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Calculator"))
	b.WriteString("\n")
	calcBindings := []struct{ key, desc string }{
		{"0-9", "Type income"},
		{"Enter", "Hitung (calculate)"},
		{"r Esc", "Reset (after calculating)"},
	}
	for _, bind := range calcBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"c x", "Jump to tab"},
		{"← → Tab", "Previous / Next tab"},
		{"j k", "Navigate settings"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header (tab bar)
	header := components.RenderTabBar(a.activeTab, w)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, cli.RuleSummary(), a.activeTab == tabCalculator && a.state.Visible)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabCalculator:
		content = a.renderCalculatorTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
