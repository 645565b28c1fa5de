// Package testutil provides testing utilities for sortcheck.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and helpers that build the pre and post
// partitions of a simulated distributed sort.
//
//	rng := testutil.NewRNG(seed)
//	pre := testutil.Partitions(rng, rng.Uint64s(1000), 4) // unsorted input per worker
//	post := testutil.SortedPartitions(pre, 4)              // globally sorted output
package testutil
