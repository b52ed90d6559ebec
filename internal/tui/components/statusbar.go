package components

import (
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the rule summary on the right. resetHint adds the reset key.
func RenderStatusBar(width int, rule string, resetHint bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [q]uit"
	if resetHint {
		left += "  [r]eset"
	}
	right := rule + " "

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
