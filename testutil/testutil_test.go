package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64s(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Uint64s(16)
	rng.Reset()
	b := rng.Uint64s(16)

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestInt64sWithDuplicates(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Int64sWithDuplicates(100, 5)

	require.Len(t, v, 100)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, int64(0))
		assert.Less(t, x, int64(5))
	}
}

func TestShuffled(t *testing.T) {
	rng := NewRNG(4711)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffled(rng, in)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in, "input must not be modified")
	assert.ElementsMatch(t, in, out)
}

func TestPartitions(t *testing.T) {
	rng := NewRNG(4711)
	in := rng.Uint64s(100)

	parts := Partitions(rng, in, 7)

	require.Len(t, parts, 7)
	assert.Equal(t, in, Flatten(parts))
	assert.Nil(t, Partitions(rng, in, 0))
}

func TestEvenPartitions(t *testing.T) {
	parts := EvenPartitions([]int{1, 2, 3, 4, 5, 6, 7}, 3)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6, 7}}, parts)
	assert.Len(t, EvenPartitions([]int{1}, 3), 3)
}

func TestSortedPartitions(t *testing.T) {
	parts := SortedPartitions([][]int{{5, 3}, {9, 1}, {4}}, 2)

	assert.Equal(t, [][]int{{1, 3}, {4, 5, 9}}, parts)
	assert.True(t, slices.IsSorted(Flatten(parts)))
}
