package sortcheck

import (
	"cmp"

	"github.com/hupe1980/sortcheck/hash"
)

// SortSummary is the exchangeable state of a sort accumulator: the local
// permutation counters plus what a coordinator needs to stitch partition
// boundaries.
type SortSummary[T any] struct {
	Summary
	PostAdded     bool `json:"post_added"`
	PostLeft      T    `json:"post_left"`
	PostRight     T    `json:"post_right"`
	SortedLocally bool `json:"sorted_locally"`
}

// SortChecker is a probabilistic sort accumulator for one worker.
//
// In addition to the permutation bookkeeping of Checker it tracks, in a single
// streaming pass, whether the post elements arrive in non-decreasing order and
// which post elements came first and last. Like Checker it is single-writer.
//
// The zero value has neither hasher nor comparator and starts out unsorted:
// create SortCheckers with NewSortChecker or NewOrderedSortChecker.
type SortChecker[T any, H hash.Hasher[T]] struct {
	Checker[T, H]

	less          func(a, b T) bool
	postAdded     bool
	postLeft      T
	postRight     T
	sortedLocally bool
}

// NewSortChecker returns a zeroed SortChecker. less is a strict less-than
// ordering over T.
func NewSortChecker[T any, H hash.Hasher[T]](h H, less func(a, b T) bool) *SortChecker[T, H] {
	return &SortChecker[T, H]{
		Checker:       Checker[T, H]{hash: h},
		less:          less,
		sortedLocally: true,
	}
}

// NewOrderedSortChecker returns a SortChecker ordered by cmp.Less.
func NewOrderedSortChecker[T cmp.Ordered, H hash.Hasher[T]](h H) *SortChecker[T, H] {
	return NewSortChecker[T, H](h, cmp.Less[T])
}

// Reset returns the checker to its initial state.
func (c *SortChecker[T, H]) Reset() {
	var zero T

	c.Checker.Reset()
	c.postAdded = false
	c.postLeft = zero
	c.postRight = zero
	c.sortedLocally = true
}

// AddPost records an element after the transformation and updates the local
// order tracking.
func (c *SortChecker[T, H]) AddPost(v T) {
	c.Checker.AddPost(v)

	if !c.postAdded {
		c.postLeft = v
		c.postAdded = true
	} else if c.less(v, c.postRight) {
		c.sortedLocally = false
	}
	c.postRight = v
}

// IsLikelyPermuted reports whether the post elements are likely a permutation
// of the pre elements.
func (c *SortChecker[T, H]) IsLikelyPermuted() bool {
	return c.IsLikelyPermutation()
}

// IsLikelySorted reports whether the post elements are likely the sorted pre
// elements. Only the local sequence is considered; use the package level
// IsLikelySorted for a group of partitions.
func (c *SortChecker[T, H]) IsLikelySorted() bool {
	return c.IsLikelyPermuted() && c.sortedLocally
}

// SortedLocally reports whether every post element was not less than its
// predecessor. Once false it stays false until Reset.
func (c *SortChecker[T, H]) SortedLocally() bool { return c.sortedLocally }

// Empty reports whether no post element has been added.
func (c *SortChecker[T, H]) Empty() bool { return !c.postAdded }

// Bounds returns the first and last post element. ok is false if the checker
// is empty.
func (c *SortChecker[T, H]) Bounds() (first, last T, ok bool) {
	return c.postLeft, c.postRight, c.postAdded
}

// Snapshot returns the exchangeable state. The permutation counters are the
// local ones.
func (c *SortChecker[T, H]) Snapshot() SortSummary[T] {
	return SortSummary[T]{
		Summary:       c.Local(),
		PostAdded:     c.postAdded,
		PostLeft:      c.postLeft,
		PostRight:     c.postRight,
		SortedLocally: c.sortedLocally,
	}
}

// Load replaces the checker's state with s. The comparator and hasher are kept.
func (c *SortChecker[T, H]) Load(s SortSummary[T]) {
	c.Checker.Load(s.Summary)
	c.postAdded = s.PostAdded
	c.postLeft = s.PostLeft
	c.postRight = s.PostRight
	c.sortedLocally = s.SortedLocally
}

// CombineSorters reduces and broadcasts the permutation counters of group,
// like Combine.
func CombineSorters[T any, H hash.Hasher[T]](group []*SortChecker[T, H]) {
	Combine(checkersOf(group))
}

// IsLikelyPermutedSorters is the read-only group permutation check for sort
// accumulators.
func IsLikelyPermutedSorters[T any, H hash.Hasher[T]](group []*SortChecker[T, H]) bool {
	return groupSummary(group, func(c *SortChecker[T, H]) Summary { return c.Local() }).IsLikelyPermutation()
}

// IsLikelySorted reports whether the post elements of group, concatenated in
// slice order, are likely the sorted pre elements of group.
//
// group must be ordered by final partition order. The verdict requires the
// group to be a likely permutation, every partition to be sorted locally, and
// the first element of each non-empty partition to be not less than the last
// element of the preceding non-empty partition. Empty partitions are skipped.
//
// The check has one-sided error, like IsLikelyPermuted. It does not modify the
// checkers.
func IsLikelySorted[T any, H hash.Hasher[T]](group []*SortChecker[T, H], less func(a, b T) bool) bool {
	if !IsLikelyPermutedSorters(group) {
		return false
	}

	var prev *SortChecker[T, H]
	for _, c := range group {
		if !c.sortedLocally {
			return false
		}
		if !c.postAdded {
			continue
		}
		if prev != nil && less(c.postLeft, prev.postRight) {
			return false
		}
		prev = c
	}

	return true
}

// IsLikelySortedSummaries is IsLikelySorted over exchanged summaries, e.g. on a
// coordinator rank that gathered every worker's Snapshot.
func IsLikelySortedSummaries[T any](summaries []SortSummary[T], less func(a, b T) bool) bool {
	if !groupSummary(summaries, func(s SortSummary[T]) Summary { return s.Summary }).IsLikelyPermutation() {
		return false
	}

	prev := -1
	for i := range summaries {
		s := &summaries[i]
		if !s.SortedLocally {
			return false
		}
		if !s.PostAdded {
			continue
		}
		if prev >= 0 && less(s.PostLeft, summaries[prev].PostRight) {
			return false
		}
		prev = i
	}

	return true
}

func checkersOf[T any, H hash.Hasher[T]](group []*SortChecker[T, H]) []*Checker[T, H] {
	out := make([]*Checker[T, H], len(group))
	for i, c := range group {
		out[i] = &c.Checker
	}
	return out
}
