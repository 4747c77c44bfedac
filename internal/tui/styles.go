package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the prompt.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns styles that read well on light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true),
		Result: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89dceb"}),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}),
		Help: lipgloss.NewStyle().
			Faint(true),
	}
}

// PlainStyles returns unstyled styles, used when color is disabled.
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
		Help:   lipgloss.NewStyle(),
	}
}
