// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color // main accent
	Secondary  lipgloss.Color // secondary accent
	Foreground lipgloss.Color // default text
	Muted      lipgloss.Color // de-emphasised text
	Error      lipgloss.Color // problems
	Border     lipgloss.Color
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // blue
		Secondary:  lipgloss.Color("#06B6D4"), // cyan
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#1D4ED8"),
		Secondary:  lipgloss.Color("#0E7490"),
		Foreground: lipgloss.Color("#1E1E2E"),
		Muted:      lipgloss.Color("#7C7F93"),
		Error:      lipgloss.Color("#D20F39"),
		Border:     lipgloss.Color("#ACB0BE"),
	}
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ForName maps a theme setting value ("light" or "dark") to a palette,
// defaulting to dark for anything unrecognised.
func ForName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles derived from a theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style // headers
	Subtitle   lipgloss.Style // secondary headers
	Normal     lipgloss.Style // regular text
	Muted      lipgloss.Style // de-emphasised text
	Selected   lipgloss.Style // highlighted list items
	Error      lipgloss.Style // error messages
	InputField lipgloss.Style // the filter input
	StatusBar  lipgloss.Style // the status line
	Help       lipgloss.Style // keybinding hints
	Border     lipgloss.Style // bordered containers
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	base := lipgloss.NewStyle().Foreground(theme.Foreground)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme:      theme,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:     base,
		Muted:      muted,
		Selected:   base.Bold(true).Background(theme.Primary),
		Error:      lipgloss.NewStyle().Foreground(theme.Error),
		InputField: border.Padding(0, 1),
		StatusBar:  muted.Padding(0, 1),
		Help:       muted,
		Border:     border,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
