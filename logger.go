package daxpybench

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with daxpybench-specific context.
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

// WithSize adds a vector size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithThreads adds a thread count field to the logger.
func (l *Logger) WithThreads(threads int) *Logger {
	return &Logger{
		Logger: l.Logger.With("threads", threads),
	}
}

// WithAlpha adds an alpha coefficient field to the logger.
func (l *Logger) WithAlpha(alpha float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("alpha", alpha),
	}
}

// LogPhase logs a completed benchmark phase.
func (l *Logger) LogPhase(phase Phase, elapsed time.Duration) {
	l.Debug("phase completed",
		"phase", string(phase),
		"elapsed_us", elapsed.Microseconds(),
	)
}

// LogVerification logs the outcome of a verification pass.
func (l *Logger) LogVerification(passed bool, maxError float64) {
	if passed {
		l.Debug("verification passed",
			"max_error", maxError,
		)
	} else {
		l.Warn("verification failed",
			"max_error", maxError,
		)
	}
}
