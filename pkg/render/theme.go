package render

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Title   lipgloss.Style // block headings
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Icons   ThemeIcons
	// Swatches is false for themes that must not emit color escapes.
	Swatches bool
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Fail   string
	Warn   string
	Bullet string
	Cell   string // one swatch cell, printed with a background color
}

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"default", "orca", "mono"}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Icons: ThemeIcons{
			Fail:   "✗",
			Warn:   "⚠",
			Bullet: "·",
			Cell:   "  ",
		},
		Swatches: true,
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")),           // sage green
		Value:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icons: ThemeIcons{
			Fail:   "✗",
			Warn:   "!",
			Bullet: "·",
			Cell:   "  ",
		},
		Swatches: true,
	}
}

// MonoTheme returns a monochrome theme (no colors, no swatches).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Fail:   "x",
			Warn:   "!",
			Bullet: "-",
			Cell:   "  ",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// ValidTheme reports whether name is one of ThemeNames.
func ValidTheme(name string) bool {
	return slices.Contains(ThemeNames, name)
}
