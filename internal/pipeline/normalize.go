package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Mode selects how the income field is redrawn after each edit.
type Mode string

const (
	// ModeGrouped redraws the field with "." every three digits.
	ModeGrouped Mode = "grouped"
	// ModePlain redraws the field with bare digits.
	ModePlain Mode = "plain"
)

// Modes lists the accepted entry modes.
var Modes = []Mode{ModeGrouped, ModePlain}

// ParseMode resolves a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGrouped, "":
		return ModeGrouped, nil
	case ModePlain:
		return ModePlain, nil
	}
	return "", fmt.Errorf("unknown entry mode %q (want grouped or plain)", s)
}

// MaxDigits caps the significant digits kept from the input. Anything typed
// past it is dropped, which keeps every allocation exact in an int64.
const MaxDigits = 15

// Entry is the normalized income field.
type Entry struct {
	Amount  int64
	Display string
}

// Empty reports whether the field holds no digits at all.
func (e Entry) Empty() bool {
	return e.Display == ""
}

// groupFormat asks humanize for "." thousands grouping and no fraction digits.
const groupFormat = "#.###,"

// GroupDigits inserts "." every three digits counting from the right.
// e.g., 1234567 -> "1.234.567". Non-positive values render as "0".
func GroupDigits(n int64) string {
	if n <= 0 {
		return "0"
	}
	return humanize.FormatInteger(groupFormat, int(n))
}

// Normalizer converts raw field content into an Entry.
type Normalizer struct {
	Mode Mode
}

// Normalize keeps only ASCII decimal digits from raw and reads them as a
// base-10 amount. It never fails: input without digits yields a zero amount
// and an empty display, and leading zeros are dropped.
func (n Normalizer) Normalize(raw string) Entry {
	var digits strings.Builder
	sawDigit := false
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		sawDigit = true
		if digits.Len() == 0 && r == '0' {
			continue
		}
		if digits.Len() == MaxDigits {
			break
		}
		digits.WriteRune(r)
	}

	if !sawDigit {
		return Entry{}
	}
	if digits.Len() == 0 {
		return Entry{Amount: 0, Display: "0"}
	}

	// At most MaxDigits ASCII digits, so this cannot overflow.
	amount, _ := strconv.ParseInt(digits.String(), 10, 64)

	if n.Mode == ModePlain {
		return Entry{Amount: amount, Display: digits.String()}
	}
	return Entry{Amount: amount, Display: GroupDigits(amount)}
}
