package bitarray

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitarray-specific fields.
// Only construction is logged; bit operations never log.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogBuild logs the outcome of New. The size is expected to be bound
// through WithSize.
func (l *Logger) LogBuild(stats Stats, err error) {
	if err != nil {
		l.Error("bit array construction failed", "error", err)
		return
	}
	l.Debug("bit array constructed",
		"depth", stats.Depth,
		"fan_out", stats.FanOut,
		"bytes", stats.Bytes,
		"ffs", stats.FFS,
		"ffs_cpu", stats.FFSCPU,
	)
}
