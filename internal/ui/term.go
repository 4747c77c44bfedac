package ui

import (
	"github.com/fatih/color"
)

// Color definitions for consistent styling across the CLI.
var (
	// Results: bold cyan so the converted range stands out
	colorResult = color.New(color.FgCyan, color.Bold)

	// Errors: red on stderr
	colorError = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information such as durations
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func colorEnabled() bool {
	return !color.NoColor
}

// formatResult formats a converted range.
func formatResult(s string) string {
	return colorResult.Sprint(s)
}

// formatError formats an error message.
func formatError(s string) string {
	return colorError.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
