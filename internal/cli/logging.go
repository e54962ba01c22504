package cli

import (
	"io"
	"log/slog"
	"strings"
)

// parseLogLevel maps flag/env values to slog.Leveler. Unset means WARN so
// the interactive menu stays readable.
func parseLogLevel(s string) slog.Leveler {
	switch strings.TrimSpace(s) {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "INFO", "info":
		return slog.LevelInfo
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// buildLogger writes to w, which is stderr in production so logs never mix with the menu.
func buildLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if strings.ToLower(strings.TrimSpace(format)) == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(w, opts))
}
