// Package vec provides portable vector operations with runtime CPU dispatch.
//
// Operations are written once against a generic Vec handle and sized to the
// widest SIMD register the host supports (AVX2, AVX-512, NEON), falling back
// to 128-bit chunks elsewhere. The implementations themselves are portable
// Go; the dispatch layer decides how many lanes each chunk carries.
//
// Basic usage:
//
//	import "github.com/numkit/go-vec/vec"
//
//	a := vec.Load(data1)
//	b := vec.Load(data2)
//	sum := vec.Add(a, b)
//	vec.Store(sum, output)
package vec

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding at most MaxLanes[T] elements.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the vec.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask marks a subset of lanes as active. It is used with MaskLoad and
// MaskStore to process array tails whose length is not a multiple of the
// vector width.
//
// Mask instances should not be created directly; use TailMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
