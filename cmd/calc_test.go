package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/budgetsplit/internal/model"
	"github.com/theirongolddev/budgetsplit/internal/session"

	"gopkg.in/yaml.v3"
)

// execute runs the root command with args against a fresh config dir and
// returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETSPLIT_LOG_LEVEL", "")

	flagMode, flagLogLevel, flagLogFile, flagOutput = "", "", "", "table"

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := run()
	return stdout.String(), stderr.String(), err
}

func TestCalc_Table(t *testing.T) {
	out, _, err := execute(t, "calc", "5000000")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	for _, want := range []string{
		"Kalkulator Keuangan Pribadi",
		"Kebutuhan Pokok (50%)", "Rp2.500.000",
		"Keinginan (30%)", "Rp1.500.000",
		"Tabungan (20%)", "Rp1.000.000",
		"Perumahan", "Rp875.000",
		"50% Kebutuhan | 30% Keinginan | 20% Tabungan",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCalc_JSON(t *testing.T) {
	out, _, err := execute(t, "calc", "Rp 7.500.000", "--output", "json")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	var got model.Allocation
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding json: %v\n%s", err, out)
	}
	if got.Income != 7_500_000 {
		t.Fatalf("income = %d, want 7500000", got.Income)
	}
	if got.Needs.Amount != 3_750_000 || got.Wants.Amount != 2_250_000 || got.Savings.Amount != 1_500_000 {
		t.Fatalf("buckets = %d/%d/%d", got.Needs.Amount, got.Wants.Amount, got.Savings.Amount)
	}
}

func TestCalc_YAML(t *testing.T) {
	out, _, err := execute(t, "calc", "1000", "-o", "yaml")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	var got model.Allocation
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding yaml: %v\n%s", err, out)
	}
	if got.Savings.Amount != 200 {
		t.Fatalf("savings = %d, want 200", got.Savings.Amount)
	}
}

func TestCalc_RejectsNonPositive(t *testing.T) {
	for _, in := range []string{"0", "abc", "000"} {
		_, _, err := execute(t, "calc", in)
		if !errors.Is(err, session.ErrInvalidIncome) {
			t.Fatalf("calc %q: err = %v, want ErrInvalidIncome", in, err)
		}
		if !strings.Contains(err.Error(), session.InvalidIncomeMessage) {
			t.Fatalf("calc %q: err = %q, want the alert message", in, err)
		}
	}
}

func TestCalc_UnknownOutput(t *testing.T) {
	_, _, err := execute(t, "calc", "1000", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("err = %v, want unknown format error", err)
	}
}

func TestCalc_BadMode(t *testing.T) {
	_, _, err := execute(t, "calc", "1000", "--mode", "fancy")
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestCalc_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetsplit.log")
	if _, _, err := execute(t, "calc", "1000", "--log-level", "debug", "--log-file", path); err != nil {
		t.Fatalf("calc: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "allocation computed") {
		t.Fatalf("log missing debug entry:\n%s", data)
	}
}

func TestCalc_RejectedStillClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetsplit.log")
	_, _, err := execute(t, "calc", "0", "--log-level", "debug", "--log-file", path)
	if !errors.Is(err, session.ErrInvalidIncome) {
		t.Fatalf("err = %v, want ErrInvalidIncome", err)
	}

	if f, ok := logger.Out.(*os.File); ok {
		t.Fatalf("logger still writes to %s after the command returned", f.Name())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "calculate rejected") {
		t.Fatalf("log missing rejection entry:\n%s", data)
	}
}

func TestConfig_Defaults(t *testing.T) {
	out, _, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"using defaults", "Entry mode: grouped", "Theme: flexoki-dark", "Level: warn"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
