// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// setupLogger installs the global slog logger writing to stdout.
func setupLogger(level, format string) {
	slog.SetDefault(newLogger(os.Stdout, level, format))
}

// newLogger builds a JSON logger for format "json" and a tint text logger otherwise.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	lvl := parseLevel(level)

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		AddSource:  lvl == slog.LevelDebug,
	}))
}

// parseLevel maps a level name to slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
