package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hours/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Show the config file path and the resolved configuration.

Values come from the defaults, the config file, and HOURS_* environment
variables, in that order. Use --init to write a config file with the
default values if none exists.

Example:
  hours config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfig(cmd.OutOrStdout(), initFile)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with default values if it does not exist")
	return cmd
}

func (a *App) runConfig(w io.Writer, initFile bool) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fmt.Fprintf(w, "Config file: %s\n", path)

	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)
	if initFile {
		if isNew {
			if err := config.Default().SaveTo(path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(w, "Created %s\n", path)
		} else {
			fmt.Fprintln(w, "Config file already exists, leaving it unchanged.")
		}
	} else if isNew {
		fmt.Fprintln(w, "No config file found, using defaults.")
	}

	fmt.Fprintln(w)
	printConfig(w, a.config)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[output]")
	fmt.Fprintf(w, "  color    = %s\n", cfg.Output.Color)
	fmt.Fprintf(w, "  duration = %t\n", cfg.Output.Duration)
	fmt.Fprintf(w, "  copy     = %t\n", cfg.Output.Copy)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level    = %s\n", cfg.Log.Level)
}
