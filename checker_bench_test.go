package sortcheck

import (
	"testing"

	"github.com/hupe1980/sortcheck/hash"
	"github.com/hupe1980/sortcheck/testutil"
)

func BenchmarkSortChecker_AddPost(b *testing.B) {
	for name, h := range map[string]hash.Hasher[int64]{
		"tabulation": hash.NewTabulation[int64](1),
		"crc32c":     hash.NewCRC32C[int64](1),
		"xxhash":     hash.NewXXHash[int64](1),
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			c := NewOrderedSortChecker[int64](h)
			v := int64(0)
			for b.Loop() {
				c.AddPost(v)
				v++
			}
		})
	}
}

func BenchmarkSortChecker_AddPostStatic(b *testing.B) {
	b.ReportAllocs()
	c := NewOrderedSortChecker[int64](hash.NewXXHash[int64](1))
	v := int64(0)
	for b.Loop() {
		c.AddPost(v)
		v++
	}
}

func BenchmarkIsLikelySorted_1024Partitions(b *testing.B) {
	rng := testutil.NewRNG(1)
	h := hash.NewTabulation[int64](1)
	post := testutil.EvenPartitions(testutil.Sorted(rng.Int64sWithDuplicates(1<<16, 1<<20)), 1024)

	group := make([]*sortChecker, len(post))
	for i := range post {
		group[i] = sorter(h, post[i], post[i])
	}

	b.ReportAllocs()
	for b.Loop() {
		if !IsLikelySorted(group, less) {
			b.Fatal("expected sorted")
		}
	}
}
