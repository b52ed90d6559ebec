// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"

	"github.com/theirongolddev/budgetsplit/internal/pipeline"
)

// CurrencyMarker prefixes every formatted amount.
const CurrencyMarker = "Rp"

// FormatGrouped groups digits the same way the income field does.
// Negative values are clamped to zero.
func FormatGrouped(n int64) string {
	return pipeline.GroupDigits(n)
}

// FormatCurrency renders a whole-unit amount with the currency marker.
// e.g., 0 -> "Rp0", 1000 -> "Rp1.000", 1234567 -> "Rp1.234.567"
func FormatCurrency(n int64) string {
	return CurrencyMarker + FormatGrouped(n)
}

// FormatPercent formats a whole percentage.
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}
