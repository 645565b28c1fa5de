package sortcheck

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting verification metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordCheck is called after each coordinator check.
	// partitions is the number of accumulators that took part.
	RecordCheck(kind CheckKind, ok bool, partitions int, duration time.Duration)

	// RecordFeed is called after a partition driver fed its checkers.
	// elements counts pre and post elements, err is nil if successful.
	RecordFeed(partitions, elements int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCheck(CheckKind, bool, int, time.Duration) {}
func (NoopMetricsCollector) RecordFeed(int, int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PermutationChecks   atomic.Int64
	PermutationFailures atomic.Int64
	SortChecks          atomic.Int64
	SortFailures        atomic.Int64
	CheckTotalNanos     atomic.Int64
	FeedCount           atomic.Int64
	FeedErrors          atomic.Int64
	FeedElements        atomic.Int64
	FeedTotalNanos      atomic.Int64
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(kind CheckKind, ok bool, partitions int, duration time.Duration) {
	b.CheckTotalNanos.Add(duration.Nanoseconds())
	switch kind {
	case SortCheck:
		b.SortChecks.Add(1)
		if !ok {
			b.SortFailures.Add(1)
		}
	default:
		b.PermutationChecks.Add(1)
		if !ok {
			b.PermutationFailures.Add(1)
		}
	}
}

// RecordFeed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFeed(partitions, elements int, duration time.Duration, err error) {
	b.FeedCount.Add(1)
	b.FeedElements.Add(int64(elements))
	b.FeedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FeedErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PermutationChecks:   b.PermutationChecks.Load(),
		PermutationFailures: b.PermutationFailures.Load(),
		SortChecks:          b.SortChecks.Load(),
		SortFailures:        b.SortFailures.Load(),
		CheckAvgNanos:       b.getAvgCheckNanos(),
		FeedCount:           b.FeedCount.Load(),
		FeedErrors:          b.FeedErrors.Load(),
		FeedElements:        b.FeedElements.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCheckNanos() int64 {
	count := b.PermutationChecks.Load() + b.SortChecks.Load()
	if count == 0 {
		return 0
	}
	return b.CheckTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	PermutationChecks   int64
	PermutationFailures int64
	SortChecks          int64
	SortFailures        int64
	CheckAvgNanos       int64
	FeedCount           int64
	FeedErrors          int64
	FeedElements        int64
}
