package components

import (
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a solid bar filled to pct percent of width.
func ShareBar(pct int, color lipgloss.Color, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	return bar.ViewAs(float64(pct) / 100)
}
