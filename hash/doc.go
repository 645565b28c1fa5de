// Package hash provides the seeded hash functions that back the sortcheck
// accumulators.
//
// Every hasher maps a value to a uint64 that is approximately uniform over its
// range. Summing those values is commutative and multiset-sensitive, which is
// what makes permutation equality checkable without buffering either side.
//
// # Strategies
//
//   - Tabulation: one 256-entry random subtable per byte of the value, combined
//     by XOR. Strongest distribution, costs size*2KiB of table per instance.
//   - CRC32C: Castagnoli CRC over the value bytes, with the seed folded into the
//     initial CRC. Weaker independence (32-bit output), no table to build.
//   - XXHash: seeded XXH64. Full 64-bit output, no table to build.
//
// # Usage
//
//	h := hash.NewTabulation[uint64](seed)
//	v := h.Hash(42)
//
// Or let the package pick based on CPU features:
//
//	h := hash.New[uint64](hash.Auto, seed)
//
// Auto selects CRC32C when the CPU has a CRC instruction (SSE4.2 on amd64,
// CRC32 on arm64) and tabulation otherwise. The SORTCHECK_HASH environment
// variable ("tabulation", "crc32c", "xxhash") overrides the choice.
//
// # Seeds
//
// Hashers never draw random state on their own. Every worker whose accumulator
// takes part in the same verdict must construct its hasher with the same seed
// and the same strategy; distributing that seed is the caller's job.
// Tabulation.Reseed reuses a table for the next round without reallocating.
//
// # Value representation
//
// Fixed-size hashers read the in-memory bytes of the value. Results therefore
// depend on byte order: workers on machines with different endianness do not
// produce comparable sums. Floating point values are hashed by bit pattern, so
// 0.0 and -0.0 hash differently.
package hash
