package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/izvolov/go-burst/cursor"
)

func TestJoinConcatenatesInOrder(t *testing.T) {
	j := cursor.NewJoin(ranges([]int{1, 2}, []int{3}, []int{4, 5, 6}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cursor.Collect[int](j))
}

func TestJoinSkipsEmptyRanges(t *testing.T) {
	j := cursor.NewJoin(ranges([]int{}, []int{1}, []int{}, []int{2, 3}))
	assert.Equal(t, []int{1, 2, 3}, cursor.Collect[int](j))
}

func TestJoinAllEmpty(t *testing.T) {
	j := cursor.NewJoin(ranges([]int{}, []int{}))
	assert.True(t, j.Empty())
}

func arrayRanges(slices ...[]int) []cursor.JoinRange[int] {
	out := make([]cursor.JoinRange[int], len(slices))
	for i, s := range slices {
		out[i] = cursor.NewArrayRange(append([]int(nil), s...))
	}
	return out
}

func TestJoinRandomAccessForward(t *testing.T) {
	j := cursor.NewJoinRandomAccess(arrayRanges([]int{1, 2}, []int{3}, []int{4, 5, 6}))

	assert.Equal(t, 1, j.Front())
	j.Advance(3)
	assert.Equal(t, 4, j.Front())
	j.Advance(2)
	assert.Equal(t, 6, j.Front())
	assert.Equal(t, 1, j.Remaining())
}

func TestJoinRandomAccessBackward(t *testing.T) {
	j := cursor.NewJoinRandomAccess(arrayRanges([]int{1, 2}, []int{3}, []int{4, 5, 6}))

	j.Advance(5)
	assert.Equal(t, 6, j.Front())
	j.Advance(-5)
	assert.Equal(t, 1, j.Front())
	assert.Equal(t, 6, j.Remaining())
}

func TestJoinRandomAccessExhausts(t *testing.T) {
	j := cursor.NewJoinRandomAccess(arrayRanges([]int{1, 2}, []int{3}))
	j.Advance(3)
	assert.True(t, j.Empty())
}
