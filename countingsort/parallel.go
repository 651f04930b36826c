package countingsort

import (
	"github.com/pkg/errors"

	"github.com/izvolov/go-burst/workerpool"
)

// parallelThreshold is the input size below which SortParallel delegates to
// Sort on the caller's own goroutine rather than paying pool dispatch cost
// for no benefit; mirrors the teacher's ParallelRadixSortUint64 dispatch
// guard (`dataframe/radix_parallel.go`: "workers < 2 || n < 1<<15").
const parallelThreshold = 1 << 15

// SortParallel is the parallel counting sort. It produces output
// bit-for-bit identical to Sort for the same src/key/max (stability
// included), for any worker count.
//
// Algorithm: chunk src into pool.Workers contiguous ranges; each worker
// computes a local histogram over its own chunk; the histograms are
// combined into per-worker, per-bucket starting offsets with one
// horizontal (cross-worker, per-bucket) prefix sum followed by one
// vertical (cross-bucket) prefix sum; each worker then scatters its chunk
// into dst using its own offset row, so no two workers ever write to the
// same output index.
//
// Falls back to Sort when pool.Workers < 2 or len(src) is small enough
// that parallel dispatch wouldn't pay for itself.
func SortParallel[T any](pool workerpool.Pool, src, dst []T, key KeyFunc[T], max uint32) (int, error) {
	n := len(src)
	if len(dst) < n {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", n, len(dst))
	}
	if pool.Workers < 2 || n < parallelThreshold {
		return Sort(src, dst, key, max)
	}

	shape := pool.Shape(n)
	buckets := int(max) + 1
	workerCounts := make([][]int, len(shape))
	for w := range workerCounts {
		workerCounts[w] = make([]int, buckets)
	}

	keyOf := make([]uint32, n)
	rangeErr := workerpool.Run(shape, func(w, start, end int) error {
		local := workerCounts[w]
		for i := start; i < end; i++ {
			k := key(src[i])
			if k > max {
				return errors.Wrapf(ErrKeyOutOfRange, "key %d exceeds max %d", k, max)
			}
			keyOf[i] = k
			local[k]++
		}
		return nil
	})
	if rangeErr != nil {
		return 0, rangeErr
	}

	// Horizontal prefix sum per bucket across workers, then vertical
	// prefix sum across buckets, yields a global starting offset per
	// bucket; expanding it per worker gives each worker's private
	// scatter offsets.
	global := make([]int, buckets)
	for b := 0; b < buckets; b++ {
		sum := 0
		for w := range workerCounts {
			sum += workerCounts[w][b]
		}
		global[b] = sum
	}
	running := 0
	for b := 0; b < buckets; b++ {
		c := global[b]
		global[b] = running
		running += c
	}

	offsets := make([][]int, len(shape))
	for b := 0; b < buckets; b++ {
		offset := global[b]
		for w := range shape {
			offsets2 := offsets[w]
			if offsets2 == nil {
				offsets2 = make([]int, buckets)
				offsets[w] = offsets2
			}
			offsets2[b] = offset
			offset += workerCounts[w][b]
		}
	}

	scatterErr := workerpool.Run(shape, func(w, start, end int) error {
		local := offsets[w]
		for i := start; i < end; i++ {
			k := keyOf[i]
			pos := local[k]
			dst[pos] = src[i]
			local[k]++
		}
		return nil
	})
	if scatterErr != nil {
		return 0, scatterErr
	}

	return n, nil
}
