package sortcheck

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortcheck/hash"
)

// feedBatch is how many elements are added between context checks.
const feedBatch = 4096

// CheckPartitions verifies that post, read partition by partition in slice
// order, is likely the sorted multiset of pre.
//
// pre[i] and post[i] are the elements observed by worker i before and after
// the transformation. One SortChecker per worker is fed concurrently, bounded
// by WithConcurrency, and the result is checked by a Coordinator built from the
// same options. The returned error is non-nil only if ctx is canceled or the
// partition counts differ; a rejected verdict is reported through Verdict.
func CheckPartitions[T any, H hash.Hasher[T]](ctx context.Context, h H, less func(a, b T) bool, pre, post [][]T, optFns ...Option) (Verdict, error) {
	o := applyOptions(optFns)
	coord := &Coordinator{opts: o}

	checkers, err := feedPartitions(ctx, o, pre, post, func() *SortChecker[T, H] {
		return NewSortChecker[T](h, less)
	})
	if err != nil {
		return Verdict{}, err
	}

	return CheckSorted(ctx, coord, Snapshots(checkers), less), nil
}

// CheckPermutationPartitions verifies that the post partitions together are
// likely a permutation of the pre partitions.
func CheckPermutationPartitions[T any, H hash.Hasher[T]](ctx context.Context, h H, pre, post [][]T, optFns ...Option) (Verdict, error) {
	o := applyOptions(optFns)
	coord := &Coordinator{opts: o}

	checkers, err := feedPartitions(ctx, o, pre, post, func() *Checker[T, H] {
		return NewChecker[T](h)
	})
	if err != nil {
		return Verdict{}, err
	}

	return coord.CheckPermutation(ctx, Summaries(checkers)), nil
}

// accumulator is what feedPartitions fills: a Checker or a SortChecker.
type accumulator[T any] interface {
	AddPre(v T)
	AddPost(v T)
}

func feedPartitions[T any, A accumulator[T]](ctx context.Context, o options, pre, post [][]T, newAcc func() A) ([]A, error) {
	if len(pre) != len(post) {
		return nil, &ErrPartitionCountMismatch{Pre: len(pre), Post: len(post)}
	}

	start := time.Now()
	elements := 0
	for i := range pre {
		elements += len(pre[i]) + len(post[i])
	}

	accs := make([]A, len(pre))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := range pre {
		g.Go(func() error {
			a := newAcc()
			if err := feed(gctx, pre[i], a.AddPre); err != nil {
				return err
			}
			if err := feed(gctx, post[i], a.AddPost); err != nil {
				return err
			}
			accs[i] = a
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// ctx may have been canceled after the last batch check.
		err = ctx.Err()
	}

	o.logger.LogFeed(ctx, len(pre), elements, err)
	o.metricsCollector.RecordFeed(len(pre), elements, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return accs, nil
}

func feed[T any](ctx context.Context, values []T, add func(T)) error {
	for len(values) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(len(values), feedBatch)
		for _, v := range values[:n] {
			add(v)
		}
		values = values[n:]
	}
	return nil
}
