package hash

import "strings"

// Strategy selects a hash function family.
type Strategy uint8

const (
	// Auto picks the best strategy for the current CPU, see AutoStrategy.
	Auto Strategy = iota
	// TabulationStrategy selects Tabulation.
	TabulationStrategy
	// CRC32CStrategy selects CRC32C.
	CRC32CStrategy
	// XXHashStrategy selects XXHash.
	XXHashStrategy
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case TabulationStrategy:
		return "tabulation"
	case CRC32CStrategy:
		return "crc32c"
	case XXHashStrategy:
		return "xxhash"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return Auto, true
	case "tabulation":
		return TabulationStrategy, true
	case "crc32c", "crc":
		return CRC32CStrategy, true
	case "xxhash", "xxh64":
		return XXHashStrategy, true
	default:
		return Auto, false
	}
}

// New returns a hasher of the given strategy for T. Auto is resolved with
// AutoStrategy; unknown values fall back to Tabulation.
func New[T Fixed](s Strategy, seed uint64) Hasher[T] {
	if s == Auto {
		s = AutoStrategy()
	}

	switch s {
	case CRC32CStrategy:
		return NewCRC32C[T](seed)
	case XXHashStrategy:
		return NewXXHash[T](seed)
	default:
		return NewTabulation[T](seed)
	}
}
