// Package log provides slog-based structured logging with a component
// field attached to every record.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing text records to stderr, tagged with the
// given component. The level comes from FINMAN_LOG_LEVEL (debug, info,
// warn, error); unset or unknown means info.
func New(component string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler).With("component", component)
}

// Discard returns a logger that drops everything; tests use it to keep
// output clean.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("FINMAN_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
