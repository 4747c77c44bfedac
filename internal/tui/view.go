package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const helpText = "enter convert • esc quit"

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(PromptLabel))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.fit(m.styles.Error.Render(m.errMsg)))
	} else {
		b.WriteString(m.fit(m.styles.Help.Render(helpText)))
	}
	b.WriteString("\n")
	return b.String()
}

// fit truncates a styled line to the terminal width, if known.
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}
