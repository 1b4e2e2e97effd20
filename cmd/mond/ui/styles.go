// Package ui hosts the clock widget in the terminal. It is the display
// surface the render loop writes into, standing in for the original
// wallpaper layer.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mond clock palette.
var (
	// Light mode
	LightForeground = lipgloss.Color("#101420")
	LightMuted      = lipgloss.Color("#6b7280")
	LightAccent     = lipgloss.Color("#7c5cd6") // violet, the Mond highlight
	LightBorder     = lipgloss.Color("#d6dae0")

	// Dark mode
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkMuted      = lipgloss.Color("#8a93a6")
	DarkAccent     = lipgloss.Color("#a78bfa")
	DarkBorder     = lipgloss.Color("#2a3850")
)

// Theme holds the widget color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Muted:      LightMuted,
		Accent:     LightAccent,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Accent:     DarkAccent,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeByName maps a config value to a theme; "auto" detects from the
// terminal environment.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses light or dark from the terminal environment.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; low background indexes
	// are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("MOND_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds the styled components of the clock face.
type Styles struct {
	Theme Theme

	// The three slots
	Weekday lipgloss.Style
	Date    lipgloss.Style
	Time    lipgloss.Style

	Frame lipgloss.Style
	Help  lipgloss.Style
}

// NewStyles creates the widget styles for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Weekday: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		Date: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Time: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			MarginTop(1),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 4),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}
