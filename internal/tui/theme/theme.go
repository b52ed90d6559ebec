// Package theme defines the color palettes for the budgetsplit TUI.
package theme

import (
	"github.com/theirongolddev/budgetsplit/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps UI roles to colors. The three bucket roles color the needs,
// wants and savings cards, their share bars and breakdown headings.
type Theme struct {
	Name string

	Background    lipgloss.Color // app background behind cards
	Surface       lipgloss.Color // card and bar backgrounds
	SurfaceHover  lipgloss.Color // active tab
	SurfaceBright lipgloss.Color // selected settings row, empty part of share bars
	Border        lipgloss.Color // content card borders
	BorderAccent  lipgloss.Color // help overlay border

	TextDim     lipgloss.Color // hints
	TextMuted   lipgloss.Color // labels, subtitles
	TextPrimary lipgloss.Color // values

	Accent       lipgloss.Color // tab keys, input prompt
	AccentBright lipgloss.Color // titles
	Key          lipgloss.Color // key names in the help overlay

	Amount  lipgloss.Color // breakdown amounts, "saved" flash
	Warning lipgloss.Color // settings save errors
	Alert   lipgloss.Color // invalid income overlay

	Needs   lipgloss.Color
	Wants   lipgloss.Color
	Savings lipgloss.Color
}

// Bucket returns the color for a budget category.
func (t Theme) Bucket(c model.Category) lipgloss.Color {
	switch c {
	case model.CategoryNeeds:
		return t.Needs
	case model.CategoryWants:
		return t.Wants
	case model.CategorySavings:
		return t.Savings
	default:
		return t.TextPrimary
	}
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm ink on dark paper.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Key:           lipgloss.Color("#24837B"),
	Amount:        lipgloss.Color("#A3B859"),
	Warning:       lipgloss.Color("#DA702C"),
	Alert:         lipgloss.Color("#D14D41"),
	Needs:         lipgloss.Color("#4385BE"),
	Wants:         lipgloss.Color("#CE5D97"),
	Savings:       lipgloss.Color("#879A39"),
}

// CatppuccinMocha is a soft pastel palette.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	Key:           lipgloss.Color("#94E2D5"),
	Amount:        lipgloss.Color("#C6F6C1"),
	Warning:       lipgloss.Color("#FAB387"),
	Alert:         lipgloss.Color("#F38BA8"),
	Needs:         lipgloss.Color("#89B4FA"),
	Wants:         lipgloss.Color("#F5C2E7"),
	Savings:       lipgloss.Color("#A6E3A1"),
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Key:           lipgloss.Color("#7DCFFF"),
	Amount:        lipgloss.Color("#B9E87A"),
	Warning:       lipgloss.Color("#FF9E64"),
	Alert:         lipgloss.Color("#F7768E"),
	Needs:         lipgloss.Color("#7AA2F7"),
	Wants:         lipgloss.Color("#BB9AF7"),
	Savings:       lipgloss.Color("#9ECE6A"),
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Key:           lipgloss.Color("6"),
	Amount:        lipgloss.Color("10"),
	Warning:       lipgloss.Color("3"),
	Alert:         lipgloss.Color("1"),
	Needs:         lipgloss.Color("4"),
	Wants:         lipgloss.Color("5"),
	Savings:       lipgloss.Color("2"),
}

// All available themes, in the order the setup wizard lists them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the names of All.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, t := range All {
		names = append(names, t.Name)
	}
	return names
}

// Lookup finds a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
