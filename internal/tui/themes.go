package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// DefaultTheme is used when no theme or an unknown theme is configured.
const DefaultTheme = "toolsver"

// themeOrder lists the selectable themes, default first.
var themeOrder = []string{DefaultTheme, "base", "base16", "catppuccin", "charm", "dracula"}

var themeBuilders = map[string]func() *huh.Theme{
	DefaultTheme: toolsverTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// selectedTheme names the theme used by prompts.
var selectedTheme = DefaultTheme

// ThemeNames returns the selectable theme names, DefaultTheme first.
func ThemeNames() []string {
	return slices.Clone(themeOrder)
}

// IsValidTheme reports whether name is a selectable theme.
func IsValidTheme(name string) bool {
	_, ok := themeBuilders[name]
	return ok
}

// SetTheme selects the prompt theme. Empty or unknown names select
// DefaultTheme; the return value reports whether name was recognized.
func SetTheme(name string) bool {
	if !IsValidTheme(name) {
		selectedTheme = DefaultTheme
		return name == ""
	}
	selectedTheme = name
	return true
}

// activeTheme builds the selected theme.
func activeTheme() *huh.Theme {
	return themeBuilders[selectedTheme]()
}
