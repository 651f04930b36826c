// Package workerpool provides the bounded, statically-chunked worker pool
// shared by the parallel counting sort and parallel radix sort engines.
//
// The scheduling shape is deliberately simple and matches what both
// parallel sorts need: split a contiguous index range [0, n) into at most
// Workers contiguous chunks, run one goroutine per chunk, and block the
// caller until every chunk finishes, even when one of them fails.
// There is no work-stealing and no dynamic rebalancing.
package workerpool

import "golang.org/x/sync/errgroup"

// Pool carries the one configuration option the parallel sorts expose:
// how many workers to use. Workers <= 1 means "run sequentially": the
// parallel sorts given such a Pool fall back to their single-threaded
// algorithm.
type Pool struct {
	Workers int
}

// Chunk is a half-open index range [Start, End) assigned to one worker.
type Chunk struct {
	Start, End int
}

// Len reports the number of elements in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Shape is the ordered list of chunks a pool divides n elements into. It
// supplements the source's shaped_array_view: counting sort and radix
// sort share this one chunking policy. It is recomputed on each parallel
// counting-sort call, so once per radix pass; the boundaries are the same
// every time for the same n and Workers.
type Shape []Chunk

// effectiveWorkers clamps the configured worker count to at least 1 and to
// at most n, since a chunk can't be empty by construction below.
func (p Pool) effectiveWorkers(n int) int {
	w := p.Workers
	if w < 1 {
		w = 1
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Shape divides [0, n) into contiguous, roughly equal-length chunks, one
// per worker. It never returns an empty chunk and never returns more
// chunks than Workers.
func (p Pool) Shape(n int) Shape {
	if n <= 0 {
		return nil
	}
	workers := p.effectiveWorkers(n)
	chunkSize := (n + workers - 1) / workers
	shape := make(Shape, 0, workers)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		shape = append(shape, Chunk{Start: start, End: end})
	}
	return shape
}

// Run launches one goroutine per chunk in shape, invoking work with the
// chunk's index and bounds, and blocks until every chunk has returned. If
// any chunk returns a non-nil error, Run returns the first such error
// (errgroup semantics); the other chunks still run to completion since
// each owns a disjoint slice of the output and cancelling them early would
// leave that slice in an undefined state.
func Run(shape Shape, work func(chunk int, start, end int) error) error {
	var g errgroup.Group
	for i, c := range shape {
		i, c := i, c
		g.Go(func() error {
			return work(i, c.Start, c.End)
		})
	}
	return g.Wait()
}
