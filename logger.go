package fuzzgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fuzzgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogAdd logs a candidate insertion.
func (l *Logger) LogAdd(added, total int) {
	l.Debug("candidates added",
		"added", added,
		"total", total,
	)
}

// LogRemove logs a candidate removal.
func (l *Logger) LogRemove(value string, total int) {
	l.Debug("candidate removed",
		"value", value,
		"total", total,
	)
}

// LogClear logs a corpus reset.
func (l *Logger) LogClear() {
	l.Debug("corpus cleared")
}

// LogFind logs a find operation.
func (l *Logger) LogFind(ctx context.Context, queryLen, resultsFound int) {
	l.DebugContext(ctx, "find completed",
		"query_len", queryLen,
		"results", resultsFound,
	)
}
