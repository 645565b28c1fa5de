package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64s returns n pseudo-random uint64 values.
func (r *RNG) Uint64s(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Int64sWithDuplicates returns n values drawn from [0, distinct), so that
// values repeat when n > distinct.
func (r *RNG) Int64sWithDuplicates(n, distinct int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		out[i] = int64(r.rand.Intn(distinct))
	}
	return out
}

// Shuffled returns a shuffled copy of values.
func Shuffled[T any](r *RNG, values []T) []T {
	out := slices.Clone(values)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Partitions splits values into n parts at random cut points. Parts may be
// empty.
func Partitions[T any](r *RNG, values []T, n int) [][]T {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	cuts := make([]int, n-1)
	for i := range cuts {
		cuts[i] = r.rand.Intn(len(values) + 1)
	}
	r.mu.Unlock()

	slices.Sort(cuts)
	return split(values, cuts)
}

// EvenPartitions splits values into n parts whose sizes differ by at most one.
func EvenPartitions[T any](values []T, n int) [][]T {
	if n <= 0 {
		return nil
	}

	cuts := make([]int, n-1)
	for i := range cuts {
		cuts[i] = (i + 1) * len(values) / n
	}
	return split(values, cuts)
}

// SortedPartitions sorts the union of parts and splits it evenly into n
// partitions, which is the post state of a correct distributed sort.
func SortedPartitions[T cmp.Ordered](parts [][]T, n int) [][]T {
	return EvenPartitions(Sorted(Flatten(parts)), n)
}

// Sorted returns a sorted copy of values.
func Sorted[T cmp.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// Flatten concatenates parts in order.
func Flatten[T any](parts [][]T) []T {
	return slices.Concat(parts...)
}

func split[T any](values []T, cuts []int) [][]T {
	out := make([][]T, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		out = append(out, values[prev:c:c])
		prev = c
	}
	return append(out, values[prev:])
}
