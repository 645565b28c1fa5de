package sortcheck

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sortcheck/hash"
)

// Coordinator computes group verdicts over gathered worker summaries and
// reports them to the configured logger and metrics collector.
//
// It performs no synchronization. Call it after the hosting engine's barrier,
// once every worker's state is final and visible to the calling goroutine.
type Coordinator struct {
	opts options
}

// NewCoordinator returns a Coordinator configured by optFns.
func NewCoordinator(optFns ...Option) *Coordinator {
	return &Coordinator{opts: applyOptions(optFns)}
}

// Logger returns the coordinator's logger.
func (c *Coordinator) Logger() *Logger {
	return c.opts.logger
}

// CheckPermutation verifies that the summaries together describe a likely
// permutation.
func (c *Coordinator) CheckPermutation(ctx context.Context, summaries []Summary) Verdict {
	start := time.Now()

	total := MergeSummaries(summaries...)
	v := Verdict{
		Kind:       PermutationCheck,
		Round:      c.opts.round,
		Permuted:   total.IsLikelyPermutation(),
		Partitions: len(summaries),
		Total:      total,
	}
	v.OK = v.Permuted

	c.report(ctx, v, time.Since(start))
	return v
}

// CheckSorted verifies that the summaries, in final partition order, describe
// the likely sorted pre elements. The verdict names every locally unsorted
// partition and every out-of-order boundary.
func CheckSorted[T any](ctx context.Context, c *Coordinator, summaries []SortSummary[T], less func(a, b T) bool) Verdict {
	start := time.Now()

	v := Verdict{
		Kind:       SortCheck,
		Round:      c.opts.round,
		Partitions: len(summaries),
		Unsorted:   roaring.New(),
		Empty:      roaring.New(),
	}

	prev := -1
	for i := range summaries {
		s := &summaries[i]
		v.Total = v.Total.Merge(s.Summary)

		if !s.SortedLocally {
			v.Unsorted.Add(uint32(i))
		}
		if !s.PostAdded {
			v.Empty.Add(uint32(i))
			continue
		}
		if prev >= 0 && less(s.PostLeft, summaries[prev].PostRight) {
			v.Boundaries = append(v.Boundaries, BoundaryViolation{Prev: prev, Next: i})
		}
		prev = i
	}

	v.Permuted = v.Total.IsLikelyPermutation()
	v.OK = v.Permuted && v.Unsorted.IsEmpty() && len(v.Boundaries) == 0

	c.report(ctx, v, time.Since(start))
	return v
}

// CheckPermutationFrames decodes one frame per rank, as written by
// EncodeSummary, and checks the summaries they carry. The error is non-nil
// only if the frames do not form one complete round.
func (c *Coordinator) CheckPermutationFrames(ctx context.Context, frames [][]byte) (Verdict, error) {
	round, summaries, err := DecodeSummaries(frames)
	if err != nil {
		return Verdict{}, err
	}
	rc, err := c.inRound(round, len(summaries))
	if err != nil {
		return Verdict{}, err
	}
	return rc.CheckPermutation(ctx, summaries), nil
}

// CheckSortedFrames decodes one frame per rank, as written by
// EncodeSortSummary, and checks them in rank order.
func CheckSortedFrames[T any](ctx context.Context, c *Coordinator, frames [][]byte, less func(a, b T) bool) (Verdict, error) {
	round, summaries, err := DecodeSortSummaries[T](frames)
	if err != nil {
		return Verdict{}, err
	}
	rc, err := c.inRound(round, len(summaries))
	if err != nil {
		return Verdict{}, err
	}
	return CheckSorted(ctx, rc, summaries, less), nil
}

// inRound returns a coordinator that reports under round. A coordinator
// pinned with WithRound rejects frames from any other round; an empty round
// carries no round number and is checked as is.
func (c *Coordinator) inRound(round uint64, ranks int) (*Coordinator, error) {
	if ranks == 0 {
		return c, nil
	}
	if c.opts.hasRound {
		if round != c.opts.round {
			return nil, &ErrRoundMismatch{Want: c.opts.round, Got: round, Rank: -1}
		}
		return c, nil
	}
	o := c.opts
	o.round, o.hasRound = round, true
	o.logger = o.logger.WithRound(round)
	return &Coordinator{opts: o}, nil
}

func (c *Coordinator) report(ctx context.Context, v Verdict, d time.Duration) {
	c.opts.logger.LogVerdict(ctx, v)
	c.opts.metricsCollector.RecordCheck(v.Kind, v.OK, v.Partitions, d)
}

// Summaries returns the local summary of every checker, in order.
func Summaries[T any, H hash.Hasher[T]](group []*Checker[T, H]) []Summary {
	out := make([]Summary, len(group))
	for i, c := range group {
		out[i] = c.Local()
	}
	return out
}

// Snapshots returns the snapshot of every sort checker, in order.
func Snapshots[T any, H hash.Hasher[T]](group []*SortChecker[T, H]) []SortSummary[T] {
	out := make([]SortSummary[T], len(group))
	for i, c := range group {
		out[i] = c.Snapshot()
	}
	return out
}
