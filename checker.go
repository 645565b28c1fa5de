package sortcheck

import "github.com/hupe1980/sortcheck/hash"

// Checker is a probabilistic permutation accumulator for one worker.
//
// The worker calls AddPre for every element before the transformation and
// AddPost for every element after it. A Checker is single-writer: it carries no
// synchronization and must not be mutated from more than one goroutine.
//
// H is the hasher type. With a concrete value type such as hash.XXHash[T] the
// per-element hash call is dispatched statically; hash.Hasher[T] itself may be
// used when the strategy is only known at run time.
//
// The zero value has no hasher: create Checkers with NewChecker.
type Checker[T any, H hash.Hasher[T]] struct {
	local Summary

	// group holds the totals broadcast by the last Combine, per channel.
	group     Summary
	groupPre  bool
	groupPost bool
	hash      H
}

// NewChecker returns a zeroed Checker hashing with h.
//
// Checkers whose results are compared must use hashers built with the same
// strategy and seed.
func NewChecker[T any, H hash.Hasher[T]](h H) *Checker[T, H] {
	return &Checker[T, H]{hash: h}
}

// Reset zeroes all counters and sums and forgets any combined totals.
func (c *Checker[T, H]) Reset() {
	c.local = Summary{}
	c.group = Summary{}
	c.groupPre = false
	c.groupPost = false
}

// AddPre records an element before the transformation.
func (c *Checker[T, H]) AddPre(v T) {
	c.local.SumPre += c.hash.Hash(v)
	c.local.CountPre++
}

// AddPost records an element after the transformation.
func (c *Checker[T, H]) AddPost(v T) {
	c.local.SumPost += c.hash.Hash(v)
	c.local.CountPost++
}

// Local returns the counters of the elements added to this checker only.
func (c *Checker[T, H]) Local() Summary {
	return c.local
}

// Summary returns the counters the verdict is computed from: the combined
// group totals for every channel that has been combined, the local counters
// otherwise.
func (c *Checker[T, H]) Summary() Summary {
	s := c.local
	if c.groupPre {
		s.CountPre, s.SumPre = c.group.CountPre, c.group.SumPre
	}
	if c.groupPost {
		s.CountPost, s.SumPost = c.group.CountPost, c.group.SumPost
	}
	return s
}

// Load replaces the local counters with s, e.g. with a summary received from
// another rank, and forgets any combined totals.
func (c *Checker[T, H]) Load(s Summary) {
	c.Reset()
	c.local = s
}

// IsLikelyPermutation reports whether the post elements are likely a
// permutation of the pre elements.
//
// The check has one-sided error: it may wrongly accept an incorrect output
// (hash collision), but never rejects a correct one. For a group verdict call
// Combine first, or use IsLikelyPermuted.
func (c *Checker[T, H]) IsLikelyPermutation() bool {
	return c.Summary().IsLikelyPermutation()
}

// Combine reduces both channels over group and writes the totals back to
// every member, so that any member answers the group verdict afterwards.
//
// The write-back is intentional. Totals are reduced from each member's local
// counters, so combining the same group again, in any order, yields the same
// result.
func Combine[T any, H hash.Hasher[T]](group []*Checker[T, H]) {
	CombinePre(group)
	CombinePost(group)
}

// CombinePre reduces and broadcasts the pre channel only.
func CombinePre[T any, H hash.Hasher[T]](group []*Checker[T, H]) {
	var count, sum uint64
	for _, c := range group {
		count += c.local.CountPre
		sum += c.local.SumPre
	}
	for _, c := range group {
		c.group.CountPre = count
		c.group.SumPre = sum
		c.groupPre = true
	}
}

// CombinePost reduces and broadcasts the post channel only.
func CombinePost[T any, H hash.Hasher[T]](group []*Checker[T, H]) {
	var count, sum uint64
	for _, c := range group {
		count += c.local.CountPost
		sum += c.local.SumPost
	}
	for _, c := range group {
		c.group.CountPost = count
		c.group.SumPost = sum
		c.groupPost = true
	}
}

// IsLikelyPermuted reports whether the group's post elements are likely a
// permutation of its pre elements. It re-derives the totals from the local
// counters and does not modify the checkers.
func IsLikelyPermuted[T any, H hash.Hasher[T]](group []*Checker[T, H]) bool {
	return groupSummary(group, (*Checker[T, H]).Local).IsLikelyPermutation()
}

func groupSummary[C any](group []C, local func(C) Summary) Summary {
	var total Summary
	for _, c := range group {
		total = total.Merge(local(c))
	}
	return total
}
