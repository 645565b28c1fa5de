package hash

import "github.com/klauspost/crc32"

// castagnoli is pre-computed for the CRC32-Castagnoli polynomial.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// foldSeed reduces a 64-bit seed to the 32-bit initial CRC.
func foldSeed(seed uint64) uint32 {
	return uint32(seed) ^ uint32(seed>>32)
}

// CRC32C hashes fixed-size values with CRC32-Castagnoli.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
//
// The output occupies the low 32 bits only, so collisions are more likely
// than with Tabulation or XXHash.
type CRC32C[T Fixed] struct {
	seed uint32
}

// NewCRC32C returns a CRC32C hasher. A zero seed gives the plain checksum.
func NewCRC32C[T Fixed](seed uint64) CRC32C[T] {
	return CRC32C[T]{seed: foldSeed(seed)}
}

// Hash returns the CRC32C of v's bytes.
func (c CRC32C[T]) Hash(v T) uint64 {
	return uint64(crc32.Update(c.seed, castagnoli, bytesOf(&v)))
}

// CRC32CBytes hashes strings and byte slices with CRC32-Castagnoli.
type CRC32CBytes[S Bytes] struct {
	seed uint32
}

// NewCRC32CBytes returns a CRC32C hasher for byte sequences.
func NewCRC32CBytes[S Bytes](seed uint64) CRC32CBytes[S] {
	return CRC32CBytes[S]{seed: foldSeed(seed)}
}

// Hash returns the CRC32C of s.
func (c CRC32CBytes[S]) Hash(s S) uint64 {
	return uint64(crc32.Update(c.seed, castagnoli, []byte(s)))
}
