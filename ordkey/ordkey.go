// Package ordkey implements the "ordered integral" transform: a mapping
// from numeric and pointer keys to an unsigned integer bit pattern whose
// unsigned order agrees with the caller's total order on the original
// value.
//
// Counting sort and radix sort only ever compare unsigned integers; every
// other key type they support is routed through this package first.
package ordkey

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Unsigned64 is the unsigned integer space every key is normalized into.
// 64 bits is wide enough to hold any of the scalar key types this package
// accepts (8..64-bit integers, float32/float64, and pointers on every
// platform Go supports).
type Unsigned64 = uint64

// Width returns the number of significant bits produced for a value of
// type T, suitable as the keyWidthBits argument of a radix sort, which
// derives from it how many 8-bit radix digits a key needs.
func Width[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// widthMask returns a mask with the low w bits set.
func widthMask(w int) Unsigned64 {
	if w >= 64 {
		return math.MaxUint64
	}
	return (Unsigned64(1) << uint(w)) - 1
}

// Signed maps a signed integer to an unsigned bit pattern by flipping the
// sign bit, equivalent to adding the bias 2^(w-1). The unsigned order of
// the result matches the signed order of x.
func Signed[T constraints.Signed](x T) Unsigned64 {
	w := Width[T]()
	raw := Unsigned64(x) & widthMask(w)
	signBit := Unsigned64(1) << uint(w-1)
	return raw ^ signBit
}

// Unsigned maps an unsigned integer to itself: the identity transform.
func Unsigned[T constraints.Unsigned](x T) Unsigned64 {
	return Unsigned64(x)
}

// Float32 maps a float32 to an unsigned bit pattern whose unsigned order
// matches the float order: -Inf, negatives, -0, +0, positives, +Inf (NaN
// placement is unspecified, per the source's ordered-integral transform).
func Float32(x float32) Unsigned64 {
	b := math.Float32bits(x)
	if b>>31 == 0 {
		return Unsigned64(b ^ 0x80000000)
	}
	return Unsigned64(^b)
}

// Float64 maps a float64 the same way Float32 maps a float32.
func Float64(x float64) Unsigned64 {
	b := math.Float64bits(x)
	if b>>63 == 0 {
		return b ^ 0x8000000000000000
	}
	return ^b
}

// Pointer maps a pointer to the unsigned integer holding its address. The
// resulting order matches address order, which is the only total order a
// generic pointer type admits.
func Pointer[T any](p *T) Unsigned64 {
	return Unsigned64(uintptr(unsafe.Pointer(p)))
}
