package sortcheck

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// CheckKind identifies the kind of check a Verdict answers.
type CheckKind uint8

const (
	// PermutationCheck verifies multiset equality only.
	PermutationCheck CheckKind = iota
	// SortCheck verifies multiset equality and global order.
	SortCheck
)

// String returns the string representation of a CheckKind.
func (k CheckKind) String() string {
	switch k {
	case PermutationCheck:
		return "permutation"
	case SortCheck:
		return "sort"
	default:
		return "unknown"
	}
}

// BoundaryViolation names two consecutive non-empty partitions whose boundary
// is out of order.
type BoundaryViolation struct {
	Prev int
	Next int
}

// Verdict is the outcome of a coordinator check.
//
// OK always equals the boolean of the matching group function
// (IsLikelyPermuted, IsLikelySorted). The remaining fields explain a rejection.
type Verdict struct {
	Kind       CheckKind
	OK         bool
	Permuted   bool
	Partitions int
	// Round is the verification round of the coordinator, zero if unset.
	Round uint64
	// Total is the merged summary of all partitions.
	Total Summary
	// Unsorted holds the indices of partitions that are not sorted locally.
	Unsorted *roaring.Bitmap
	// Empty holds the indices of partitions without post elements.
	Empty      *roaring.Bitmap
	Boundaries []BoundaryViolation
}

// Err returns nil for an accepted verdict and otherwise an error joining one
// cause per detected failure.
func (v Verdict) Err() error {
	if v.OK {
		return nil
	}

	var errs []error
	if !v.Permuted {
		errs = append(errs, fmt.Errorf("%w: %d pre, %d post elements",
			ErrNotPermutation, v.Total.CountPre, v.Total.CountPost))
	}
	if v.Unsorted != nil {
		it := v.Unsorted.Iterator()
		for it.HasNext() {
			errs = append(errs, &ErrUnsortedPartition{Partition: int(it.Next())})
		}
	}
	for _, b := range v.Boundaries {
		errs = append(errs, &ErrBoundaryViolation{Prev: b.Prev, Next: b.Next})
	}

	return errors.Join(errs...)
}
