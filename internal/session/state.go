// Package session holds the calculator's view state and the handlers that
// move it between "editing" and "results visible".
//
// State is a value. Every handler takes the current State and returns the
// next one, so callers own it explicitly and tests need no UI harness.
package session

import (
	"errors"

	"github.com/theirongolddev/budgetsplit/internal/model"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"
)

// InvalidIncomeMessage is the alert shown when Calculate rejects the income.
const InvalidIncomeMessage = "Masukkan jumlah pendapatan yang valid"

// ErrInvalidIncome is returned by Calculate when the income is not positive.
var ErrInvalidIncome = errors.New("income must be a positive amount")

// State is the calculator view state.
type State struct {
	Entry   pipeline.Entry
	Visible bool
	Alert   string
}

// Income returns the current normalized income.
func (s State) Income() int64 {
	return s.Entry.Amount
}

// Input replaces the income with the normalized form of raw, the full field
// content after an edit. Any pending alert is cleared.
func (s State) Input(n pipeline.Normalizer, raw string) State {
	s.Entry = n.Normalize(raw)
	s.Alert = ""
	return s
}

// Calculate reveals the results. Non-positive income is rejected with
// ErrInvalidIncome, an alert is set and the results stay hidden.
func (s State) Calculate() (State, error) {
	if s.Entry.Amount <= 0 {
		s.Alert = InvalidIncomeMessage
		return s, ErrInvalidIncome
	}
	s.Alert = ""
	s.Visible = true
	return s, nil
}

// DismissAlert clears the alert without touching anything else.
func (s State) DismissAlert() State {
	s.Alert = ""
	return s
}

// Reset clears the income and hides the results. Resetting twice is the
// same as resetting once.
func (s State) Reset() State {
	return State{}
}

// Result derives the allocation from the current income.
func (s State) Result() model.Allocation {
	return pipeline.Allocate(s.Entry.Amount)
}
