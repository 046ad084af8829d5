package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a text logger writing to stdout.
func NewConsoleLogger(level string) Logger {
	return NewConsoleLoggerTo(level, os.Stdout)
}

// NewConsoleLoggerTo creates a text logger writing to w, e.g. stderr for a CLI whose stdout carries results.
func NewConsoleLoggerTo(level string, w io.Writer) Logger {
	return NewSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}
