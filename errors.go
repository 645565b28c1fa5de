package sortcheck

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPermutation is reported when the post elements are not a
	// permutation of the pre elements.
	ErrNotPermutation = errors.New("post elements are not a permutation of pre elements")

	// ErrNotSorted is the common cause of all ordering failures.
	ErrNotSorted = errors.New("post elements are not sorted")
)

// ErrUnsortedPartition indicates a partition whose post elements are not in
// non-decreasing order.
//
// errors.Is(err, ErrNotSorted) reports true.
type ErrUnsortedPartition struct {
	Partition int
}

func (e *ErrUnsortedPartition) Error() string {
	return fmt.Sprintf("partition %d is not sorted locally", e.Partition)
}

func (e *ErrUnsortedPartition) Unwrap() error { return ErrNotSorted }

// ErrBoundaryViolation indicates that the first element of partition Next is
// less than the last element of partition Prev, the preceding non-empty
// partition.
//
// errors.Is(err, ErrNotSorted) reports true.
type ErrBoundaryViolation struct {
	Prev int
	Next int
}

func (e *ErrBoundaryViolation) Error() string {
	return fmt.Sprintf("boundary violation: partition %d starts below the end of partition %d", e.Next, e.Prev)
}

func (e *ErrBoundaryViolation) Unwrap() error { return ErrNotSorted }

// ErrPartitionCountMismatch indicates that the pre and post inputs of a
// partition driver describe a different number of partitions.
type ErrPartitionCountMismatch struct {
	Pre  int
	Post int
}

func (e *ErrPartitionCountMismatch) Error() string {
	return fmt.Sprintf("partition count mismatch: %d pre, %d post", e.Pre, e.Post)
}

// ErrRoundMismatch indicates a frame from a different verification round
// than the one being checked. Rank is -1 when every frame disagrees with the
// round the coordinator is pinned to.
type ErrRoundMismatch struct {
	Want uint64
	Got  uint64
	Rank int
}

func (e *ErrRoundMismatch) Error() string {
	if e.Rank < 0 {
		return fmt.Sprintf("round mismatch: frames report round %d, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("round mismatch: rank %d reported round %d, want %d", e.Rank, e.Got, e.Want)
}

// ErrRank indicates a set of frames whose ranks are not exactly 0..n-1.
type ErrRank struct {
	Rank      int
	Ranks     int
	Duplicate bool
}

func (e *ErrRank) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("rank %d reported twice", e.Rank)
	}
	return fmt.Sprintf("rank %d out of range [0, %d)", e.Rank, e.Ranks)
}
