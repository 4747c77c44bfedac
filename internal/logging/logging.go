// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a level name to a slog.Level.
// The second return value is false for unknown names, in which case
// slog.LevelInfo is returned.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// New returns a logger writing tinted text records to w.
func New(w io.Writer, level string, noColor bool) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
	if !ok {
		logger.Warn("Invalid log level, defaulting to INFO", "level", level)
	}
	return logger
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, level string, noColor bool) *slog.Logger {
	logger := New(w, level, noColor)
	slog.SetDefault(logger)
	return logger
}
