package ui

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hours/internal/clock"
	"github.com/javiermolinar/hours/internal/tui"
)

// convertOptions are the per-run output settings.
type convertOptions struct {
	duration bool
	copy     bool
}

func (a *App) runConvert(cmd *cobra.Command, args []string) error {
	opts := convertOptions{
		duration: boolSetting(cmd, "duration", a.duration, a.config.Output.Duration),
		copy:     boolSetting(cmd, "copy", a.copy, a.config.Output.Copy),
	}

	switch {
	case len(args) > 0:
		return a.convertArgs(args, opts)
	case a.isTerminal(a.in):
		return a.runPrompt(opts)
	default:
		return a.convertStream(opts)
	}
}

// convertArgs converts the arguments joined by single spaces, so an
// unquoted range like `hours 9 AM to 5 PM` works.
func (a *App) convertArgs(args []string, opts convertOptions) error {
	text := strings.Join(args, " ")
	r, err := a.parse(text)
	if err != nil {
		return clock.ErrInvalidInput
	}
	a.printResult(r, opts)
	a.copyResult(r, opts)
	return nil
}

// convertStream converts each non-blank input line. Invalid lines are
// reported and skipped; the command fails if any line was invalid.
func (a *App) convertStream(opts convertOptions) error {
	scanner := bufio.NewScanner(a.in)
	var (
		lineNo, total, failed int
		last                  clock.TimeRange
	)
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		total++
		r, err := a.parse(text)
		if err != nil {
			failed++
			fmt.Fprintln(a.errOut, formatError(fmt.Sprintf("line %d: %s", lineNo, clock.ErrInvalidInput)))
			continue
		}
		a.printResult(r, opts)
		last = r
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if total == 0 {
		return fmt.Errorf("no input: %w", clock.ErrInvalidInput)
	}
	if failed < total {
		a.copyResult(last, opts)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines: %w", failed, total, clock.ErrInvalidInput)
	}
	return nil
}

// runPrompt asks for a range interactively. Cancelling is not an error.
func (a *App) runPrompt(opts convertOptions) error {
	styles := tui.DefaultStyles()
	if !colorEnabled() {
		styles = tui.PlainStyles()
	}
	r, ok, err := a.prompt(a.in, a.out, tui.WithStyles(styles), tui.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("running prompt: %w", err)
	}
	if !ok {
		a.logger.Debug("Prompt cancelled")
		return nil
	}
	a.printResult(r, opts)
	a.copyResult(r, opts)
	return nil
}

func (a *App) parse(text string) (clock.TimeRange, error) {
	r, err := clock.Parse(text)
	if err != nil {
		a.logger.Debug("Rejected input", "input", text, "kind", clock.ErrorKind(err), "error", err)
		return clock.TimeRange{}, err
	}
	a.logger.Debug("Converted", "input", text, "output", r.String())
	return r, nil
}

func (a *App) printResult(r clock.TimeRange, opts convertOptions) {
	line := formatResult(r.String())
	if opts.duration {
		line += " " + formatMuted("("+formatDuration(r.Duration())+")")
	}
	fmt.Fprintln(a.out, line)
}

// copyResult copies the plain range text. A clipboard failure is only
// logged since the result has already been printed.
func (a *App) copyResult(r clock.TimeRange, opts convertOptions) {
	if !opts.copy {
		return
	}
	if err := a.copyText(r.String()); err != nil {
		a.logger.Warn("Copy to clipboard failed", "error", err)
		return
	}
	a.logger.Debug("Copied to clipboard", "text", r.String())
}

// formatDuration formats d as hours and minutes, e.g. "8h", "1h30m", "45m".
func formatDuration(d time.Duration) string {
	total := int(d.Minutes())
	hours, mins := total/60, total%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, mins)
	}
}
