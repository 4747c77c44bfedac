package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/javiermolinar/hours/internal/clock"
	"github.com/javiermolinar/hours/internal/config"
	"github.com/javiermolinar/hours/internal/logging"
	"github.com/javiermolinar/hours/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// PromptFunc shows an interactive prompt and returns the converted range.
// ok is false if the user cancelled.
type PromptFunc func(in io.Reader, out io.Writer, opts ...tui.Option) (r clock.TimeRange, ok bool, err error)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	logger *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Replaceable for tests
	isTerminal func(io.Reader) bool
	copyText   func(string) error
	prompt     PromptFunc

	configPath string
	duration   bool
	copy       bool
	noColor    bool
	debug      bool
}

// Option configures an App.
type Option func(*App)

// WithIO sets the streams used for input, results, and diagnostics.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithTerminalCheck overrides how the app decides whether input is interactive.
func WithTerminalCheck(fn func(io.Reader) bool) Option {
	return func(a *App) {
		a.isTerminal = fn
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(a *App) {
		a.copyText = fn
	}
}

// WithPrompt overrides the interactive prompt.
func WithPrompt(fn PromptFunc) Option {
	return func(a *App) {
		a.prompt = fn
	}
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		config:     cfg,
		logger:     slog.Default(),
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: isTerminal,
		copyText:   clipboard.WriteAll,
		prompt:     tui.Run,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "hours [RANGE...]",
		Short: "Convert 12-hour time ranges to 24-hour form",
		Long: `Hours converts a time range written on a 12-hour clock into 24-hour form.

The range is read from the arguments, from standard input (one range per
line), or from an interactive prompt when standard input is a terminal.

Examples:
  hours 9 AM to 5 PM
  hours "10:30 PM to 8:50 AM"
  printf '9 AM to 5 PM\n12 PM to 12 AM\n' | hours`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
	}
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)
	a.root.SetErr(a.errOut)

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging on stderr")
	a.root.Flags().BoolVarP(&a.duration, "duration", "d", false, "Show the length of each range")
	a.root.Flags().BoolVarP(&a.copy, "copy", "c", false, "Copy the last result to the clipboard")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

// setup reloads the config when --config is given, then applies color
// and logging settings. It runs before every command.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	a.applyColorMode()

	level := a.config.Log.Level
	if a.debug {
		level = "debug"
	}
	a.logger = logging.Setup(a.errOut, level, !colorEnabled())
	a.logger.Debug("Starting", "command", cmd.Name(), "version", Version)
	return nil
}

func (a *App) applyColorMode() {
	switch {
	case a.noColor || os.Getenv("NO_COLOR") != "":
		DisableColor()
	case a.config.ColorMode() == config.ColorNever:
		DisableColor()
	case a.config.ColorMode() == config.ColorAlways:
		EnableColor()
	}
}

// boolSetting returns the flag value if it was set on the command line,
// otherwise the configured default.
func boolSetting(cmd *cobra.Command, name string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hours %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
