package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/budgetsplit/internal/config"
	"github.com/theirongolddev/budgetsplit/internal/logging"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
	"github.com/theirongolddev/budgetsplit/internal/session"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	theme.SetActive("flexoki-dark")

	a := NewApp(pipeline.ModeGrouped, logging.Discard())
	a.needSetup = false
	a.setupForm = nil

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func send(t *testing.T, a App, msgs ...tea.Msg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = a.Update(msg)
		a = m.(App)
	}
	return a, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeDigits(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestTypingRedrawsGroupedIncome(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("5000000")...)

	if got := a.input.Value(); got != "5.000.000" {
		t.Fatalf("input = %q, want %q", got, "5.000.000")
	}
	if got := a.state.Income(); got != 5_000_000 {
		t.Fatalf("income = %d, want 5000000", got)
	}
	if a.state.Visible {
		t.Fatal("results visible before calculating")
	}
}

func TestTypingPlainMode(t *testing.T) {
	a := newTestApp(t)
	a.normalizer.Mode = pipeline.ModePlain
	a, _ = send(t, a, typeDigits("0012345")...)

	if got := a.input.Value(); got != "12345" {
		t.Fatalf("input = %q, want %q", got, "12345")
	}
}

func TestBackspaceRenormalizes(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("12345")...)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyBackspace})

	if got := a.input.Value(); got != "1.234" {
		t.Fatalf("input = %q, want %q", got, "1.234")
	}
}

func TestEnterRevealsResults(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("5000000")...)
	a, _ = send(t, a, enter)

	if !a.state.Visible {
		t.Fatal("results not visible after enter")
	}
	view := a.View()
	for _, want := range []string{"Rp2.500.000", "Rp1.500.000", "Rp1.000.000", "Rincian Detail", "Rp875.000"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterOnEmptyShowsAlert(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, enter)

	if a.state.Alert != session.InvalidIncomeMessage {
		t.Fatalf("alert = %q, want %q", a.state.Alert, session.InvalidIncomeMessage)
	}
	if a.state.Visible {
		t.Fatal("results visible after rejected calculate")
	}
	if !strings.Contains(a.View(), "Masukkan jumlah pendapatan yang valid") {
		t.Fatal("alert not rendered")
	}

	// Any key dismisses it and is not applied as input.
	a, _ = send(t, a, runes("7"))
	if a.state.Alert != "" {
		t.Fatalf("alert still set: %q", a.state.Alert)
	}
	if got := a.input.Value(); got != "" {
		t.Fatalf("dismiss key leaked into input: %q", got)
	}
}

func TestEnterOnZeroShowsAlert(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("000")...)
	a, _ = send(t, a, enter)

	if a.state.Alert == "" {
		t.Fatal("expected alert for zero income")
	}
}

func TestResetClearsEverything(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("5000000")...)
	a, _ = send(t, a, enter, runes("r"))

	if a.state != (session.State{}) {
		t.Fatalf("state after reset = %+v, want zero", a.state)
	}
	if got := a.input.Value(); got != "" {
		t.Fatalf("input after reset = %q", got)
	}

	// Reset before calculating does nothing.
	a, _ = send(t, a, typeDigits("42")...)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if got := a.input.Value(); got != "42" {
		t.Fatalf("esc while editing changed input to %q", got)
	}
}

func TestResultsFollowInputWhileVisible(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("1000")...)
	a, _ = send(t, a, enter)
	a, _ = send(t, a, runes("0"))

	if !a.state.Visible {
		t.Fatal("results hidden after editing")
	}
	if got := a.state.Result().Needs.Amount; got != 5000 {
		t.Fatalf("needs = %d, want 5000", got)
	}
}

func TestPasteIsNormalized(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Rp 1.250.000,-q"), Paste: true})

	if got := a.input.Value(); got != "1.250.000" {
		t.Fatalf("input = %q, want %q", got, "1.250.000")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		a := newTestApp(t)
		_, cmd := send(t, a, msg)
		if cmd == nil {
			t.Fatalf("%s: no command returned", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: command is not quit", msg)
		}
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t)

	a, _ = send(t, a, runes("x"))
	if a.activeTab != tabSettings {
		t.Fatalf("x -> tab %d, want settings", a.activeTab)
	}
	a, _ = send(t, a, runes("c"))
	if a.activeTab != tabCalculator {
		t.Fatalf("c -> tab %d, want calculator", a.activeTab)
	}
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.activeTab != tabSettings {
		t.Fatalf("tab -> tab %d, want settings", a.activeTab)
	}
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.activeTab != tabCalculator {
		t.Fatalf("shift+tab -> tab %d, want calculator", a.activeTab)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, runes("?"))
	if !a.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay not rendered")
	}
	a, _ = send(t, a, runes("5"))
	if a.showHelp {
		t.Fatal("help not dismissed")
	}
	if got := a.input.Value(); got != "" {
		t.Fatalf("dismiss key leaked into input: %q", got)
	}
}

func TestSettingsChangeEntryMode(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, typeDigits("5000000")...)
	a, _ = send(t, a, runes("x"), runes("j"), enter)

	if !a.settings.editing || a.settings.cursor != settingsFieldEntryMode {
		t.Fatalf("not editing entry mode: editing=%v cursor=%d", a.settings.editing, a.settings.cursor)
	}
	a.settings.input.SetValue("plain")
	a, _ = send(t, a, enter)

	if a.settings.saveErr != nil {
		t.Fatalf("save: %v", a.settings.saveErr)
	}
	if a.normalizer.Mode != pipeline.ModePlain {
		t.Fatalf("mode = %q, want plain", a.normalizer.Mode)
	}
	if got := a.input.Value(); got != "5000000" {
		t.Fatalf("input not redrawn: %q", got)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.EntryMode != "plain" {
		t.Fatalf("saved entry mode = %q", cfg.General.EntryMode)
	}
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, runes("x"), enter)
	a.settings.input.SetValue("solarized")
	a, _ = send(t, a, enter)

	if a.settings.saveErr == nil {
		t.Fatal("expected error for unknown theme")
	}
	if config.Exists() {
		t.Fatal("config written despite invalid theme")
	}
}

func TestTooNarrow(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Fatal("narrow warning not rendered")
	}
}

// drain runs cmd and feeds whatever it produces back into the app, the way
// the Bubble Tea runtime would. Commands that do not return promptly (cursor
// blink ticks) are dropped.
func drain(t *testing.T, a App, cmd tea.Cmd, depth int) App {
	t.Helper()
	if cmd == nil || depth > 16 {
		return a
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return a
	}

	switch msg.(type) {
	case nil, tea.QuitMsg:
		return a
	}

	// tea.Batch and tea.Sequence both produce a slice of commands.
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		for i := 0; i < v.Len(); i++ {
			a = drain(t, a, v.Index(i).Interface().(tea.Cmd), depth+1)
		}
		return a
	}

	m, next := a.Update(msg)
	return drain(t, m.(App), next, depth+1)
}

func TestSetupWizardSavesAnswers(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	theme.SetActive("flexoki-dark")

	a := NewApp(pipeline.ModeGrouped, logging.Discard())
	if !a.needSetup || a.setupForm == nil {
		t.Fatal("setup wizard not started without a config file")
	}
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = drain(t, m.(App), m.(App).Init(), 0)

	// Pick "Plain digits", then accept the default theme.
	for _, key := range []tea.KeyMsg{{Type: tea.KeyDown}, enter, enter, enter} {
		if !a.needSetup {
			break
		}
		m, cmd := a.Update(key)
		a = drain(t, m.(App), cmd, 0)
	}
	if a.needSetup {
		t.Fatal("setup wizard did not complete")
	}

	if a.normalizer.Mode != pipeline.ModePlain {
		t.Fatalf("app mode = %q, want plain", a.normalizer.Mode)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.EntryMode != "plain" {
		t.Fatalf("saved entry mode = %q, want plain", cfg.General.EntryMode)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("saved theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSetupAnswersSharedAcrossCopies(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp(pipeline.ModeGrouped, logging.Discard())
	running := a // the runtime works on a copy

	// The form writes through the pointer it was built with.
	a.setupVals.entryMode = string(pipeline.ModePlain)
	a.setupVals.theme = "tokyo-night"
	t.Cleanup(func() { theme.SetActive("flexoki-dark") })

	if err := running.saveSetupConfig(); err != nil {
		t.Fatalf("saveSetupConfig: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.EntryMode != "plain" || cfg.Appearance.Theme != "tokyo-night" {
		t.Fatalf("saved %+v, want plain/tokyo-night", cfg)
	}
	if running.normalizer.Mode != pipeline.ModePlain {
		t.Fatalf("running mode = %q, want plain", running.normalizer.Mode)
	}
}

func TestApplySetupValues(t *testing.T) {
	cfg := config.DefaultConfig()
	applySetupValues(&cfg, setupValues{theme: "tokyo-night", entryMode: "plain"})

	if cfg.Appearance.Theme != "tokyo-night" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.General.EntryMode != "plain" {
		t.Fatalf("entry mode = %q", cfg.General.EntryMode)
	}

	// Bad mode leaves the current one alone.
	applySetupValues(&cfg, setupValues{entryMode: "fancy"})
	if cfg.General.EntryMode != "plain" {
		t.Fatalf("entry mode = %q after bad value", cfg.General.EntryMode)
	}
}
