package sortcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortcheck/hash"
	"github.com/hupe1980/sortcheck/testutil"
)

func less(a, b int64) bool { return a < b }

type sortChecker = SortChecker[int64, hash.Hasher[int64]]

// sorter returns a sort checker fed with pre and post.
func sorter(h hash.Hasher[int64], pre, post []int64) *sortChecker {
	c := NewSortChecker(h, less)
	for _, v := range pre {
		c.AddPre(v)
	}
	for _, v := range post {
		c.AddPost(v)
	}
	return c
}

// partitions returns one sort checker per partition, each fed its own
// partition as pre and post.
func partitions(h hash.Hasher[int64], parts ...[]int64) []*sortChecker {
	out := make([]*sortChecker, len(parts))
	for i, p := range parts {
		out[i] = sorter(h, p, p)
	}
	return out
}

func TestSortChecker_Local(t *testing.T) {
	h := hash.NewTabulation[int64](1)

	tests := []struct {
		name       string
		pre, post  []int64
		wantSorted bool
		wantPerm   bool
	}{
		{"sorted", []int64{3, 1, 2}, []int64{1, 2, 3}, true, true},
		{"duplicates", []int64{2, 1, 2, 1}, []int64{1, 1, 2, 2}, true, true},
		{"unsorted", []int64{3, 1, 2}, []int64{1, 3, 2}, false, true},
		{"not permuted", []int64{3, 1, 2}, []int64{1, 2, 4}, false, false},
		{"single", []int64{5}, []int64{5}, true, true},
		{"empty", nil, nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sorter(h, tt.pre, tt.post)

			assert.Equal(t, tt.wantPerm, c.IsLikelyPermuted())
			assert.Equal(t, tt.wantSorted, c.IsLikelySorted())
			assert.Equal(t, len(tt.post) == 0, c.Empty())
		})
	}
}

func TestNewSortChecker_InitialState(t *testing.T) {
	for _, c := range []*SortChecker[int64, hash.XXHash[int64]]{
		NewSortChecker[int64](hash.NewXXHash[int64](1), less),
		NewOrderedSortChecker[int64](hash.NewXXHash[int64](1)),
	} {
		assert.True(t, c.Empty())
		assert.True(t, c.SortedLocally())
		assert.True(t, c.IsLikelySorted())
		assert.Equal(t, SortSummary[int64]{SortedLocally: true}, c.Snapshot())
	}

	// Without a constructor there is no comparator and nothing is sorted yet.
	var zero SortChecker[int64, hash.XXHash[int64]]
	assert.False(t, zero.SortedLocally())
}

func TestSortChecker_SortedLocallyIsSticky(t *testing.T) {
	c := NewOrderedSortChecker[int64](hash.NewXXHash[int64](1))
	c.AddPost(5)
	c.AddPost(4)
	require.False(t, c.SortedLocally())

	for v := int64(10); v < 20; v++ {
		c.AddPost(v)
	}
	assert.False(t, c.SortedLocally())
}

func TestSortChecker_Bounds(t *testing.T) {
	c := NewOrderedSortChecker[int64](hash.NewXXHash[int64](1))
	_, _, ok := c.Bounds()
	assert.False(t, ok)

	for _, v := range []int64{4, 6, 9} {
		c.AddPost(v)
	}
	first, last, ok := c.Bounds()
	assert.True(t, ok)
	assert.Equal(t, int64(4), first)
	assert.Equal(t, int64(9), last)
}

func TestSortChecker_Reset(t *testing.T) {
	c := sorter(hash.NewTabulation[int64](1), []int64{1, 2}, []int64{2, 1, 7})
	require.False(t, c.IsLikelySorted())

	c.Reset()

	assert.True(t, c.Empty())
	assert.True(t, c.SortedLocally())
	assert.Equal(t, SortSummary[int64]{SortedLocally: true}, c.Snapshot())
	assert.True(t, c.IsLikelySorted())

	c.AddPre(3)
	c.AddPost(3)
	first, last, ok := c.Bounds()
	assert.True(t, ok)
	assert.Equal(t, int64(3), first)
	assert.Equal(t, int64(3), last)
	assert.True(t, c.IsLikelySorted())
}

func TestIsLikelySorted_Group(t *testing.T) {
	h := hash.NewTabulation[int64](4711)

	tests := []struct {
		name  string
		parts [][]int64
		want  bool
	}{
		{"sorted", [][]int64{{1, 2, 3}, {4, 5}, {6, 7, 8}}, true},
		{"boundary violation", [][]int64{{1, 2, 3}, {0, 5}, {6, 7, 8}}, false},
		{"equal boundary", [][]int64{{1, 2, 3}, {3, 5}, {5}}, true},
		{"empty partitions skipped", [][]int64{{}, {1, 2, 3}, {}, {}, {4, 5}, {}, {6, 7, 8}, {}}, true},
		{"violation across empty", [][]int64{{1, 2, 3}, {}, {2, 5}}, false},
		{"unsorted partition", [][]int64{{1, 2, 3}, {5, 4}, {6, 7, 8}}, false},
		{"single non-empty", [][]int64{{}, {3, 4}, {}}, true},
		{"all empty", [][]int64{{}, {}}, true},
		{"none", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := partitions(h, tt.parts...)

			assert.Equal(t, tt.want, IsLikelySorted(group, less))
			assert.Equal(t, tt.want, IsLikelySortedSummaries(Snapshots(group), less))
		})
	}
}

func TestIsLikelySorted_GroupNotPermuted(t *testing.T) {
	h := hash.NewTabulation[int64](4711)
	group := []*sortChecker{
		sorter(h, []int64{3, 1, 2}, []int64{1, 2}),
		sorter(h, []int64{5, 4}, []int64{3, 4, 5}),
		sorter(h, []int64{6}, []int64{6, 7}),
	}

	// Elements moved between workers are fine.
	assert.True(t, IsLikelyPermutedSorters(group[:2]))
	assert.True(t, IsLikelySorted(group[:2], less))

	// An element appearing from nowhere is not.
	assert.False(t, IsLikelyPermutedSorters(group))
	assert.False(t, IsLikelySorted(group, less))
}

func TestIsLikelySorted_Random(t *testing.T) {
	rng := testutil.NewRNG(8)
	h := hash.NewTabulation[int64](uint64(rng.Seed()))

	for _, distinct := range []int{300, 1 << 30} {
		in := rng.Int64sWithDuplicates(5000, distinct)
		pre := testutil.Partitions(rng, in, 8)
		post := testutil.SortedPartitions(pre, 8)

		group := make([]*sortChecker, len(pre))
		for i := range pre {
			group[i] = sorter(h, pre[i], post[i])
		}
		require.True(t, IsLikelySorted(group, less), "distinct=%d", distinct)
	}
}

func TestIsLikelySorted_SwapAcrossBoundary(t *testing.T) {
	rng := testutil.NewRNG(9)
	h := hash.NewTabulation[int64](9)

	in := rng.Int64sWithDuplicates(5000, 1<<30)
	pre := testutil.Partitions(rng, in, 8)
	post := testutil.SortedPartitions(pre, 8)

	// Both partitions stay sorted locally, only the boundary breaks.
	last := len(post[1]) - 1
	require.Less(t, post[1][last], post[2][0])
	post[2][0], post[1][last] = post[1][last], post[2][0]

	group := make([]*sortChecker, len(pre))
	for i := range pre {
		group[i] = sorter(h, pre[i], post[i])
		assert.True(t, group[i].SortedLocally(), "partition %d", i)
	}
	assert.True(t, IsLikelyPermutedSorters(group))
	assert.False(t, IsLikelySorted(group, less))
}

func TestCombineSorters(t *testing.T) {
	h := hash.NewTabulation[int64](3)
	group := []*sortChecker{
		sorter(h, []int64{2, 1}, []int64{1}),
		sorter(h, nil, []int64{2}),
	}
	require.False(t, group[0].IsLikelySorted())

	CombineSorters(group)

	assert.True(t, group[0].IsLikelySorted())
	assert.True(t, group[1].IsLikelySorted())
	assert.True(t, IsLikelySorted(group, less))
}

func TestSortChecker_Load(t *testing.T) {
	h := hash.NewTabulation[int64](3)
	src := sorter(h, []int64{9, 8}, []int64{8, 9})

	dst := NewOrderedSortChecker[int64](h)
	dst.Load(src.Snapshot())

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
	assert.True(t, dst.IsLikelySorted())

	// Order tracking continues from the loaded state.
	dst.AddPost(1)
	assert.False(t, dst.SortedLocally())
}
