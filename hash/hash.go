package hash

import "unsafe"

// Hasher maps a value to a fixed-width unsigned integer.
//
// Implementations must be pure functions of (seed, value) and safe for
// concurrent use once constructed.
type Hasher[T any] interface {
	Hash(v T) uint64
}

// Fixed is the set of types with a fixed, inspectable in-memory
// representation. The hash width of a fixed-size hasher is derived from T, so a
// value can never disagree with the table it is looked up in.
type Fixed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Bytes is the set of variable-length byte sequences.
type Bytes interface {
	~string | ~[]byte
}

// Func adapts a plain function to the Hasher interface.
type Func[T any] func(v T) uint64

// Hash calls f(v).
func (f Func[T]) Hash(v T) uint64 { return f(v) }

// Size returns the number of bytes a fixed-size hasher reads for T.
func Size[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesOf returns the in-memory bytes of *v without copying.
// The slice aliases v and must not outlive it.
func bytesOf[T Fixed](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
