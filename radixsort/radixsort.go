// Package radixsort implements the LSD (least-significant-digit) radix
// sort: sequential and parallel variants, both built on top of
// countingsort, with an already-sorted short-circuit and a per-digit
// skip when every element shares that digit.
package radixsort

import (
	"github.com/pkg/errors"

	"github.com/izvolov/go-burst/countingsort"
)

// ErrBufferTooSmall is returned when the scratch buffer cannot hold every
// element of the input.
var ErrBufferTooSmall = errors.New("radixsort: scratch buffer smaller than input")

// KeyFunc maps an element to its normalized unsigned sort key, typically
// produced by the ordkey package so that unsigned-integer order agrees
// with the caller's intended order.
type KeyFunc[T any] func(T) uint64

// Extractor pulls one small-integer digit out of a key at the given digit
// index (0 = least significant). The default, DefaultExtractor, reads an
// 8-bit byte, which is the radix every sort in this package defaults to
// per the external-interface contract ("radix defaults to low-byte").
type Extractor func(key uint64, digit int) uint32

// DefaultExtractor reads the digit-th byte (8-bit radix) of key.
func DefaultExtractor(key uint64, digit int) uint32 {
	return uint32((key >> uint(8*digit)) & 0xFF)
}

const digitCardinalityMax = 0xFF

// digitCount returns how many 8-bit digits a key of the given bit width
// needs, rounding up.
func digitCount(keyWidthBits int) int {
	return (keyWidthBits + 7) / 8
}

// Sort performs a stable LSD radix sort of src in place, using scratch as
// intermediate storage, under key whose significant width is keyWidthBits
// bits. scratch must have length >= len(src); its final contents are
// unspecified. Digits are extracted 8 bits at a time via DefaultExtractor.
func Sort[T any](src, scratch []T, key KeyFunc[T], keyWidthBits int) error {
	return SortWithExtractor(src, scratch, key, keyWidthBits, DefaultExtractor)
}

// SortWithExtractor is Sort with a caller-supplied digit extractor. The
// number of passes is still (keyWidthBits+7)/8 and every extracted digit
// must lie in [0, 0xFF]: digit widths other than 8 bits are not
// supported, since a narrower digit leaves high key bits unsorted and a
// wider one fails with countingsort.ErrKeyOutOfRange.
func SortWithExtractor[T any](src, scratch []T, key KeyFunc[T], keyWidthBits int, extract Extractor) error {
	n := len(src)
	if len(scratch) < n {
		return errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", n, len(scratch))
	}
	if n <= 1 {
		return nil
	}
	if isSortedByKey(src, key) {
		return nil
	}

	digits := digitCount(keyWidthBits)
	cur, alt := src, scratch
	resultInScratch := false

	for d := 0; d < digits; d++ {
		digit := d
		digitKey := func(x T) uint32 { return extract(key(x), digit) }

		if allSameDigit(cur, digitKey) {
			continue
		}

		if _, err := countingsort.Sort(cur, alt, digitKey, digitCardinalityMax); err != nil {
			return err
		}
		cur, alt = alt, cur
		resultInScratch = !resultInScratch
	}

	if resultInScratch {
		copy(src, cur)
	}
	return nil
}

// isSortedByKey detects the already-sorted-by-key short-circuit: if src is
// already non-decreasing under key, no pass is necessary.
func isSortedByKey[T any](src []T, key KeyFunc[T]) bool {
	for i := 1; i < len(src); i++ {
		if key(src[i-1]) > key(src[i]) {
			return false
		}
	}
	return true
}

// allSameDigit reports whether every element of s produces the same digit
// value, in which case scattering by that digit would be a no-op permute
// and the pass can be skipped outright.
func allSameDigit[T any](s []T, digitKey countingsort.KeyFunc[T]) bool {
	if len(s) == 0 {
		return true
	}
	first := digitKey(s[0])
	for _, x := range s[1:] {
		if digitKey(x) != first {
			return false
		}
	}
	return true
}
