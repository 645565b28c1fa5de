package sortcheck

import (
	"log/slog"
	"runtime"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
	round            uint64
	hasRound         bool
}

// Option configures a Coordinator or a partition driver.
type Option func(*options)

// WithLogger configures structured logging of verdicts.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sortcheck.NewJSONLogger(slog.LevelDebug)
//	coord := sortcheck.NewCoordinator(sortcheck.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for verdicts.
// Pass nil to disable metrics collection.
//
//	metrics := &sortcheck.BasicMetricsCollector{}
//	coord := sortcheck.NewCoordinator(sortcheck.WithMetricsCollector(metrics))
//	// ... run checks ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency limits how many partitions a partition driver feeds in
// parallel. Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithRound pins a Coordinator to one verification round. Verdicts carry the
// round, log lines are tagged with it, and frames from other rounds are
// rejected with ErrRoundMismatch.
func WithRound(round uint64) Option {
	return func(o *options) {
		o.round = round
		o.hasRound = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.hasRound {
		o.logger = o.logger.WithRound(o.round)
	}
	return o
}
