package components

import (
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Calculator", Key: 'c', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

func tabStyles() (active, inactive, key, dimKey lipgloss.Style) {
	t := theme.Active

	active = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactive = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	key = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKey = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	return active, inactive, key, dimKey
}

func renderTab(tab Tab, active bool) string {
	activeStyle, inactiveStyle, keyStyle, dimKeyStyle := tabStyles()
	pad := inactiveStyle.Render(" ")

	if active {
		return activeStyle.Render(tab.Name)
	}

	// Render with highlighted shortcut key
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		before := tab.Name[:tab.KeyPos]
		key := string(tab.Name[tab.KeyPos])
		after := tab.Name[tab.KeyPos+1:]
		return pad + inactiveStyle.Render(before) +
			dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(after) + pad
	}

	// Key not in name (e.g., "Settings" with 'x')
	return pad + inactiveStyle.Render(tab.Name) +
		dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]") + pad
}

// TabVisualWidth returns the rendered column width of a tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}

	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	row := strings.Join(parts, sep)

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
