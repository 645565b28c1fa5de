package hash

import "github.com/cespare/xxhash/v2"

// XXHash hashes fixed-size values with seeded XXH64.
type XXHash[T Fixed] struct {
	seed uint64
}

// NewXXHash returns an XXH64 hasher for T.
func NewXXHash[T Fixed](seed uint64) XXHash[T] {
	return XXHash[T]{seed: seed}
}

// Hash returns the XXH64 of v's bytes.
func (x XXHash[T]) Hash(v T) uint64 {
	return sum64(x.seed, bytesOf(&v))
}

// XXHashBytes hashes strings and byte slices with seeded XXH64.
type XXHashBytes[S Bytes] struct {
	seed uint64
}

// NewXXHashBytes returns an XXH64 hasher for byte sequences.
func NewXXHashBytes[S Bytes](seed uint64) XXHashBytes[S] {
	return XXHashBytes[S]{seed: seed}
}

// Hash returns the XXH64 of s.
func (x XXHashBytes[S]) Hash(s S) uint64 {
	return sum64(x.seed, []byte(s))
}

func sum64(seed uint64, b []byte) uint64 {
	if seed == 0 {
		return xxhash.Sum64(b)
	}

	var d xxhash.Digest
	d.ResetWithSeed(seed)
	_, _ = d.Write(b)
	return d.Sum64()
}
