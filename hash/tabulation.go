package hash

import "math/rand/v2"

// tabulationStream is the PCG stream selector. The seed picks the state, the
// stream is fixed so that equal seeds always give equal tables.
const tabulationStream = 0x9e3779b97f4a7c15

// Tabulation implements tabulation hashing.
//
// It keeps Size[T]() subtables of 256 random uint64 values. A value is hashed
// by treating it as Size[T]() bytes and XOR'ing the entry selected by byte i in
// subtable i.
//
// A Tabulation is read-only outside Reseed and can be shared between
// goroutines.
type Tabulation[T Fixed] struct {
	seed  uint64
	table [][256]uint64
}

// NewTabulation builds the subtables for T from seed.
func NewTabulation[T Fixed](seed uint64) *Tabulation[T] {
	t := &Tabulation[T]{table: make([][256]uint64, Size[T]())}
	t.fill(seed)
	return t
}

// Reseed refills the existing subtables from seed. Afterwards t hashes like
// NewTabulation[T](seed).
//
// Reseed must not run concurrently with Hash. Checkers that compare results
// must be reseeded together between rounds.
func (t *Tabulation[T]) Reseed(seed uint64) {
	t.fill(seed)
}

func (t *Tabulation[T]) fill(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, tabulationStream))
	for i := range t.table {
		for j := range t.table[i] {
			t.table[i][j] = rng.Uint64()
		}
	}
	t.seed = seed
}

// Seed returns the seed the table was built from.
func (t *Tabulation[T]) Seed() uint64 { return t.seed }

// Hash returns the tabulation hash of v.
func (t *Tabulation[T]) Hash(v T) uint64 {
	var h uint64
	for i, b := range bytesOf(&v) {
		h ^= t.table[i][b]
	}
	return h
}
