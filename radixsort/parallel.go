package radixsort

import (
	"github.com/pkg/errors"

	"github.com/izvolov/go-burst/countingsort"
	"github.com/izvolov/go-burst/workerpool"
)

// parallelThreshold mirrors countingsort's own cutoff, itself grounded on
// the teacher's ParallelRadixSortUint64 dispatch guard
// (`dataframe/radix_parallel.go`): below this input size, dispatching to
// the worker pool costs more than it saves.
const parallelThreshold = 1 << 15

// SortParallel is the parallel LSD radix sort: every digit pass is
// delegated to countingsort.SortParallel, so stability and output are
// bit-identical to Sort for the same src/key/keyWidthBits regardless of
// worker count. Falls back to Sort when pool.Workers < 2 or len(src) is
// below the parallel threshold.
func SortParallel[T any](pool workerpool.Pool, src, scratch []T, key KeyFunc[T], keyWidthBits int) error {
	return SortParallelWithExtractor(pool, src, scratch, key, keyWidthBits, DefaultExtractor)
}

// SortParallelWithExtractor is SortParallel with a caller-supplied digit
// extractor.
func SortParallelWithExtractor[T any](pool workerpool.Pool, src, scratch []T, key KeyFunc[T], keyWidthBits int, extract Extractor) error {
	n := len(src)
	if len(scratch) < n {
		return errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", n, len(scratch))
	}
	if pool.Workers < 2 || n < parallelThreshold {
		return SortWithExtractor(src, scratch, key, keyWidthBits, extract)
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

		if _, err := countingsort.SortParallel(pool, cur, alt, digitKey, digitCardinalityMax); err != nil {
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
