package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/izvolov/go-burst/cursor"
)

func TestTakeAtMostCapsOutput(t *testing.T) {
	r := cursor.NewArrayRange([]int{1, 2, 3, 4, 5})
	capped := cursor.TakeAtMost[int](r, 3)
	assert.Equal(t, []int{1, 2, 3}, cursor.Collect[int](capped))
}

func TestTakeAtMostNeverExceedsUnderlying(t *testing.T) {
	r := cursor.NewArrayRange([]int{1, 2})
	capped := cursor.TakeAtMost[int](r, 10)
	assert.Equal(t, []int{1, 2}, cursor.Collect[int](capped))
}

func TestCheckSorted(t *testing.T) {
	assert.True(t, cursor.CheckSorted([]int{1, 2, 2, 3}, cursor.OrderedLess[int]))
	assert.False(t, cursor.CheckSorted([]int{1, 3, 2}, cursor.OrderedLess[int]))
	assert.True(t, cursor.CheckSorted([]int{}, cursor.OrderedLess[int]))
}

func TestArrayRangeBackwardAdvance(t *testing.T) {
	r := cursor.NewArrayRange([]int{1, 2, 3})
	r.Advance(2)
	assert.Equal(t, 3, r.Front())
	r.Advance(-1)
	assert.Equal(t, 2, r.Front())
	assert.Equal(t, 2, r.Len())
}

// Round-trip identity laws: every combinator over a single sub-range
// must behave as the identity, and intersecting/unioning a range with
// itself must not change it.
func TestIdentityLaws(t *testing.T) {
	data := []int{1, 2, 2, 3, 5}

	merged := cursor.NewMergeOrdered(ranges(data))
	assert.Equal(t, data, cursor.Collect[int](merged))

	unioned := cursor.NewUnion(ranges(data, data), cursor.OrderedLess[int])
	assert.Equal(t, data, cursor.Collect[int](unioned))

	intersected := cursor.NewIntersect(ranges(data, data), cursor.OrderedLess[int])
	assert.Equal(t, data, cursor.Collect[int](intersected))

	diffed := cursor.NewDifference[int](cursor.NewArrayRange(append([]int(nil), data...)), cursor.NewArrayRange(nil), cursor.OrderedLess[int])
	assert.Equal(t, data, cursor.Collect[int](diffed))
}
