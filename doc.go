// Package sortcheck provides probabilistic correctness checks for
// permutation and sorting steps executed by independent workers.
//
// Each worker owns one accumulator. It feeds every element it sees before the
// transformation with AddPre and every element it produces with AddPost. After
// the hosting engine's own barrier, a coordinator combines the accumulators
// into a single verdict.
//
// The checks have one-sided error: a correct execution is never rejected, an
// incorrect one is accepted only if the hash sums of two different multisets
// collide.
//
// # Permutation
//
//	h := hash.NewTabulation[uint64](seed) // same seed on every worker
//	c := sortcheck.NewChecker[uint64](h)
//	c.AddPre(v)  // for every input element
//	c.AddPost(v) // for every output element
//
//	sortcheck.IsLikelyPermuted(group) // read-only group verdict
//	sortcheck.Combine(group)          // or: broadcast totals to every member
//	group[0].IsLikelyPermutation()
//
// The hasher is a type parameter. A concrete hasher such as hash.XXHash[T] is
// called without interface dispatch; hash.Hasher[T] works when the strategy is
// chosen at run time, e.g. by hash.New.
//
// # Sorting
//
// SortChecker additionally tracks local order and the first and last output
// element, so that the boundaries between partitions can be stitched:
//
//	c := sortcheck.NewOrderedSortChecker[int64](h)
//	...
//	sortcheck.IsLikelySorted(group, cmp.Less[int64]) // group in final partition order
//
// # Distributed runs
//
// Each rank frames its Snapshot with EncodeSortSummary (or its Summary with
// EncodeSummary) and ships the bytes over the engine's own transport. A
// Coordinator decodes the frames it gathered and returns a Verdict that names
// the failing partitions:
//
//	frame, err := sortcheck.EncodeSortSummary(codec.Default, round, rank, c.Snapshot())
//	...
//	coord := sortcheck.NewCoordinator(sortcheck.WithRound(round), sortcheck.WithLogger(logger))
//	v, err := sortcheck.CheckSortedFrames(ctx, coord, frames, less)
//	if err := v.Err(); err != nil {
//	    // abort, retry, ...
//	}
//
// CheckSorted and CheckPermutation take already decoded summaries.
//
// Engines that hold all partitions in memory can use CheckPartitions, which
// feeds one checker per partition concurrently.
//
// # Concurrency
//
// Accumulators are single-writer and carry no synchronization. Hashers are
// read-only and may be shared; Tabulation.Reseed must not overlap with any
// Hash call. Group functions must only run after every
// worker has finished and its writes are visible to the caller.
package sortcheck
