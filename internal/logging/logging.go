// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
)

// Setup installs a tint-backed slog logger on stderr as the default
// and returns it.
func Setup(level string) *slog.Logger {
	logger := New(colorable.NewColorableStderr(), level)
	slog.SetDefault(logger)
	return logger
}

// New returns a tint-backed slog logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
	}))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
