// Package logger provides the process-wide structured logger used by every layer of the engine.
// Console output uses slog's text handler; file output is JSON, rotated by lumberjack.
package logger
