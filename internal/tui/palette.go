package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for the default toolsver theme.
var (
	toolsverAmberPrimary = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	toolsverAmberBright  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	toolsverAmberAccent  = lipgloss.AdaptiveColor{Light: "#92400e", Dark: "#fcd34d"}

	toolsverTextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	toolsverTextNormal = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#e5e7eb"}
	toolsverTextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	toolsverTextFaint  = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}

	toolsverBorderFocused = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"}
	toolsverBorderNormal  = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"}

	toolsverButtonBg          = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	toolsverButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	toolsverButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"}
	toolsverButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
)

// toolsverTheme builds the default prompt theme on top of huh's base theme.
func toolsverTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(toolsverBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(toolsverAmberPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(toolsverTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(lipgloss.Color("1"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color("1"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(toolsverAmberBright)
	t.Focused.Option = t.Focused.Option.Foreground(toolsverTextNormal)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(toolsverAmberAccent)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(toolsverAmberBright)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(toolsverTextFaint)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(toolsverAmberPrimary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(toolsverTextStrong)

	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(toolsverButtonText).
		Background(toolsverButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(toolsverButtonTextBlurred).
		Background(toolsverButtonBgBlurred).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(toolsverBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(toolsverTextMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(toolsverTextMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(toolsverTextFaint)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(toolsverTextFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(toolsverTextMuted)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(toolsverTextFaint)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(toolsverTextFaint)

	return t
}
