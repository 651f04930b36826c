// Package cursor implements the multi-way lazy sequence combinators:
// merge, union, intersect, semiintersect, difference, symmetric
// difference, and join. Every combinator is itself a SortedRange, so
// combinators compose without ever materializing an intermediate
// sequence.
package cursor

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedRange is a half-open, forward-movable view over a sequence that
// is pre-sorted under a strict weak order. It is the cursor contract
// every sub-range and every multi-way combinator in this package
// implements.
//
// Sortedness under the combinator's order is a precondition of every
// constructor below; violating it is undefined behavior, exactly as it is
// for the source this package is modeled on. Use CheckSorted during
// development to validate a concrete slice cheaply before wrapping it.
type SortedRange[T any] interface {
	// Empty reports whether the range has any elements left.
	Empty() bool
	// Front returns the first element. Calling Front on an empty range
	// is undefined.
	Front() T
	// Advance moves the front forward by n elements. Most combinators in
	// this package only ever call Advance(1) on their sub-ranges;
	// concrete range types are free to support arbitrary n efficiently.
	Advance(n int)
}

// RandomAccessRange is a SortedRange that additionally knows its own
// length in O(1); the random-access join cursor requires it.
type RandomAccessRange[T any] interface {
	SortedRange[T]
	Len() int
}

// Less is a strict weak order: Less(a, b) reports whether a sorts
// strictly before b.
type Less[T any] func(a, b T) bool

// OrderedLess is the default comparator for any type with the
// built-in `<` relation, used by the Ordered-suffixed constructors.
func OrderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}

func equal[T any](less Less[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// ArrayRange is the concrete, bidirectional SortedRange this package's
// tests and the random-access join cursor are built on: a view over a
// fixed backing slice, advanceable forward and backward without
// reallocating or losing access to skipped-over elements.
type ArrayRange[T any] struct {
	data       []T
	begin, end int
}

// NewArrayRange wraps data as a SortedRange. data must already be sorted
// under whatever order the caller intends to use it with.
func NewArrayRange[T any](data []T) *ArrayRange[T] {
	return &ArrayRange[T]{data: data, begin: 0, end: len(data)}
}

func (r *ArrayRange[T]) Empty() bool { return r.begin >= r.end }
func (r *ArrayRange[T]) Front() T    { return r.data[r.begin] }
func (r *ArrayRange[T]) Len() int    { return r.end - r.begin }

// Pos reports how many elements have been consumed from the start of the
// range, i.e. how far Advance has moved the front forward in total.
func (r *ArrayRange[T]) Pos() int { return r.begin }

// Advance moves the front by n elements; n may be negative to move
// backward. Advancing past either end of the backing slice clamps to that
// end rather than panicking.
func (r *ArrayRange[T]) Advance(n int) {
	r.begin += n
	if r.begin < 0 {
		r.begin = 0
	}
	if r.begin > r.end {
		r.begin = r.end
	}
}

// CheckSorted reports whether data is non-decreasing under less. It is a
// cheap, caller-invoked precondition check — combinators never run it
// automatically, since a SortedRange is not generally re-readable once
// consumed.
func CheckSorted[T any](data []T, less Less[T]) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// Collect drains r into a new slice, in emission order. It consumes r.
func Collect[T any](r SortedRange[T]) []T {
	var out []T
	for !r.Empty() {
		out = append(out, r.Front())
		r.Advance(1)
	}
	return out
}

// advanceToAtLeast moves r's front forward until it is no longer less
// than target (or r is exhausted) — a linear lower_bound. A SortedRange
// whose concrete type can do better implements fastLowerBounder and is
// used instead.
func advanceToAtLeast[T any](r SortedRange[T], target T, less Less[T]) {
	if fast, ok := r.(fastLowerBounder[T]); ok {
		fast.advanceToAtLeast(target, less)
		return
	}
	for !r.Empty() && less(r.Front(), target) {
		r.Advance(1)
	}
}

// fastLowerBounder is an optional interface a SortedRange may implement
// to provide an O(log n) lower_bound instead of the default linear scan.
type fastLowerBounder[T any] interface {
	advanceToAtLeast(target T, less Less[T])
}

// advanceToAtLeast gives ArrayRange an O(log n) lower_bound via binary
// search over its remaining, sorted suffix.
func (r *ArrayRange[T]) advanceToAtLeast(target T, less Less[T]) {
	n := r.end - r.begin
	i := sort.Search(n, func(i int) bool {
		return !less(r.data[r.begin+i], target)
	})
	r.begin += i
}

func sortByFront[T any](ranges []SortedRange[T], less Less[T]) {
	sort.Slice(ranges, func(i, j int) bool {
		return less(ranges[i].Front(), ranges[j].Front())
	})
}

func dropEmpty[T any](ranges []SortedRange[T]) []SortedRange[T] {
	write := 0
	for _, r := range ranges {
		if !r.Empty() {
			ranges[write] = r
			write++
		}
	}
	return ranges[:write]
}

// TakeAtMostRange caps an underlying range to at most n elements, without
// copying. Supplements the source's take_at_most_iterator /
// buffered_chunk_iterator: useful for feeding a combinator a bounded
// prefix of an otherwise-unbounded range.
type TakeAtMostRange[T any] struct {
	inner     SortedRange[T]
	remaining int
}

// TakeAtMost wraps r so it reports at most n elements.
func TakeAtMost[T any](r SortedRange[T], n int) *TakeAtMostRange[T] {
	return &TakeAtMostRange[T]{inner: r, remaining: n}
}

func (t *TakeAtMostRange[T]) Empty() bool {
	return t.remaining <= 0 || t.inner.Empty()
}

func (t *TakeAtMostRange[T]) Front() T { return t.inner.Front() }

func (t *TakeAtMostRange[T]) Advance(n int) {
	t.inner.Advance(n)
	t.remaining -= n
}
