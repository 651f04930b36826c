package cursor

import "golang.org/x/exp/constraints"

// MergeCursor is a K-way merge over sorted sub-ranges: a binary
// min-heap keyed on each sub-range's front, popped and re-pushed one
// step at a time so the overall front is always the smallest element
// remaining across every input.
type MergeCursor[T any] struct {
	heap []SortedRange[T]
	less Less[T]
}

// NewMerge builds a merge cursor over ranges. Empty ranges are dropped up
// front; ranges is not retained after construction, but the sub-ranges it
// contains are, and will be mutated by Advance.
func NewMerge[T any](ranges []SortedRange[T], less Less[T]) *MergeCursor[T] {
	active := make([]SortedRange[T], 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			active = append(active, r)
		}
	}
	heapify(active, less)
	return &MergeCursor[T]{heap: active, less: less}
}

// NewMergeOrdered is NewMerge for any built-in ordered element type, using
// the natural `<` order.
func NewMergeOrdered[T constraints.Ordered](ranges []SortedRange[T]) *MergeCursor[T] {
	return NewMerge(ranges, OrderedLess[T])
}

func (c *MergeCursor[T]) Empty() bool { return len(c.heap) == 0 }
func (c *MergeCursor[T]) Front() T    { return c.heap[0].Front() }

func (c *MergeCursor[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		c.advanceOne()
	}
}

func (c *MergeCursor[T]) advanceOne() {
	if len(c.heap) == 0 {
		return
	}
	top, rest := heapPopMin(c.heap, c.less)
	top.Advance(1)
	if top.Empty() {
		c.heap = rest
		return
	}
	c.heap = heapPush(rest, top, c.less)
}

// heapPopMin removes the minimum-front element from a (already
// heap-ordered) slice and returns it along with the remaining heap,
// shrunk by one and re-ordered.
func heapPopMin[T any](a []SortedRange[T], less Less[T]) (SortedRange[T], []SortedRange[T]) {
	n := len(a)
	top := a[0]
	a[0] = a[n-1]
	rest := a[:n-1]
	siftDown(rest, 0, less)
	return top, rest
}

// heapPush appends x to the heap and restores the heap property.
func heapPush[T any](a []SortedRange[T], x SortedRange[T], less Less[T]) []SortedRange[T] {
	a = append(a, x)
	siftUp(a, len(a)-1, less)
	return a
}

func heapify[T any](a []SortedRange[T], less Less[T]) {
	for i := len(a)/2 - 1; i >= 0; i-- {
		siftDown(a, i, less)
	}
}

func siftDown[T any](a []SortedRange[T], i int, less Less[T]) {
	n := len(a)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && less(a[l].Front(), a[smallest].Front()) {
			smallest = l
		}
		if r < n && less(a[r].Front(), a[smallest].Front()) {
			smallest = r
		}
		if smallest == i {
			return
		}
		a[i], a[smallest] = a[smallest], a[i]
		i = smallest
	}
}

func siftUp[T any](a []SortedRange[T], i int, less Less[T]) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(a[i].Front(), a[parent].Front()) {
			return
		}
		a[i], a[parent] = a[parent], a[i]
		i = parent
	}
}
