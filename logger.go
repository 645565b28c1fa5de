package sortcheck

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sortcheck-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRound adds a verification round field to the logger.
func (l *Logger) WithRound(round uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("round", round),
	}
}

// LogVerdict logs the outcome of a check. Accepted verdicts are logged at
// debug level, rejected ones at warn level with the failing parts.
func (l *Logger) LogVerdict(ctx context.Context, v Verdict) {
	if v.OK {
		l.DebugContext(ctx, "check passed",
			"kind", v.Kind.String(),
			"partitions", v.Partitions,
			"count", v.Total.CountPost,
		)
		return
	}

	attrs := []any{
		"kind", v.Kind.String(),
		"partitions", v.Partitions,
		"permuted", v.Permuted,
		"count_pre", v.Total.CountPre,
		"count_post", v.Total.CountPost,
	}
	if v.Unsorted != nil && !v.Unsorted.IsEmpty() {
		attrs = append(attrs, "unsorted", v.Unsorted.ToArray())
	}
	if len(v.Boundaries) > 0 {
		attrs = append(attrs, "boundary_violations", len(v.Boundaries))
	}
	l.WarnContext(ctx, "check failed", attrs...)
}

// LogFeed logs the completion of a partition driver's feeding phase.
func (l *Logger) LogFeed(ctx context.Context, partitions, elements int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "feeding partitions failed",
			"partitions", partitions,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "partitions fed",
			"partitions", partitions,
			"elements", elements,
		)
	}
}
