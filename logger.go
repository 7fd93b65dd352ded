package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON slog.Logger. Debug runs also record the
// source location, since generator errors are easiest traced by file:line.
func NewLogger(level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h)
}
