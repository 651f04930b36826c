// Package countingsort implements the single-pass stable counting sort
// engine: sequential and parallel variants, both driven by a
// caller-supplied key projection whose range is known up front.
package countingsort

import "github.com/pkg/errors"

// ErrBufferTooSmall is returned when the destination buffer cannot hold
// every element of the source.
var ErrBufferTooSmall = errors.New("countingsort: destination buffer smaller than source")

// ErrKeyOutOfRange is returned when key(x) exceeds the declared maximum
// for some element x.
var ErrKeyOutOfRange = errors.New("countingsort: key exceeds declared maximum")

// KeyFunc maps an element to a bucket index in [0, max]. max is supplied
// separately to Sort/SortParallel rather than baked into the function type
// because it is a run-time property of the caller's data (e.g. "256" for a
// single 8-bit radix digit), not a compile-time one.
type KeyFunc[T any] func(T) uint32

// Sort performs a stable counting sort of src into dst under key, whose
// values lie in [0, max]. dst must have length >= len(src) and must not
// overlap src: overlapping slices produce undefined results, since reads
// of src and writes to dst interleave element-by-element.
//
// Returns the number of elements written, which is always len(src) on
// success. Both passes walk src in input order, so elements with equal
// keys keep their relative input order: the sort is stable.
func Sort[T any](src, dst []T, key KeyFunc[T], max uint32) (int, error) {
	n := len(src)
	if len(dst) < n {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", n, len(dst))
	}
	if n == 0 {
		return 0, nil
	}

	counters := make([]int, int(max)+2)
	for _, x := range src {
		k := key(x)
		if k > max {
			return 0, errors.Wrapf(ErrKeyOutOfRange, "key %d exceeds max %d", k, max)
		}
		counters[k+1]++
	}

	sum := 0
	for i := range counters {
		c := counters[i]
		counters[i] = sum
		sum += c
	}

	for _, x := range src {
		k := key(x)
		i := counters[k]
		dst[i] = x
		counters[k]++
	}

	return n, nil
}
