// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Log level (debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// Output defaults to os.Stderr
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: "warn", Format: "text"}
}

// NewLogger creates a slog.Logger from cfg.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h).With("app", "lineq")
}

// ParseLevel maps a level name to slog.Level; unknown names map to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
