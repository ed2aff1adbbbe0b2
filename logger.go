package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog.Logger writing to stderr. Debug level
// also enables source locations, since per-frame log lines are only
// useful when they say which stage emitted them.
func NewLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if level <= slog.LevelDebug {
		opts.AddSource = true
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
