package dynamictuple_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izvolov/go-burst/dynamictuple"
)

func TestPushAndGetHeterogeneousValues(t *testing.T) {
	tup := dynamictuple.New()

	require.NoError(t, dynamictuple.Push(tup, 42))
	require.NoError(t, dynamictuple.Push(tup, "hello"))
	require.NoError(t, dynamictuple.Push(tup, 3.14))

	require.Equal(t, 3, tup.Len())

	i, err := dynamictuple.Get[int](tup, 0)
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	s, err := dynamictuple.Get[string](tup, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	f, err := dynamictuple.Get[float64](tup, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.14, f)
}

func TestGetTypeMismatchReturnsError(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 42))

	_, err := dynamictuple.Get[string](tup, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamictuple.ErrTypeMismatch)
}

func TestGetIndexOutOfRange(t *testing.T) {
	tup := dynamictuple.New()
	_, err := dynamictuple.Get[int](tup, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamictuple.ErrIndexOutOfRange)
}

func TestPopRemovesLastElement(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 1))
	require.NoError(t, dynamictuple.Push(tup, 2))

	require.NoError(t, tup.Pop())
	assert.Equal(t, 1, tup.Len())

	v, err := dynamictuple.Get[int](tup, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPopOnEmptyReturnsError(t *testing.T) {
	tup := dynamictuple.New()
	err := tup.Pop()
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamictuple.ErrIndexOutOfRange)
}

func TestClearResetsSizeButNotCapacity(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 1))
	require.NoError(t, dynamictuple.Push(tup, 2))

	capBefore := tup.Capacity()
	tup.Clear()

	assert.Equal(t, 0, tup.Len())
	assert.True(t, tup.Empty())
	assert.Equal(t, uintptr(0), tup.Volume())
	assert.Equal(t, capBefore, tup.Capacity())
}

func TestReserveGrowsCapacityGeometrically(t *testing.T) {
	tup := dynamictuple.New()
	initial := tup.Capacity()

	require.NoError(t, tup.Reserve(initial+1))
	assert.GreaterOrEqual(t, tup.Capacity(), initial+1)
	assert.Equal(t, initial*2, tup.Capacity())
}

func TestReserveIsNoOpWhenAlreadySufficient(t *testing.T) {
	tup := dynamictuple.New()
	initial := tup.Capacity()

	require.NoError(t, tup.Reserve(initial-1))
	assert.Equal(t, initial, tup.Capacity())
}

func TestShrinkToFitNeverGoesBelowDefaultCapacity(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 1))

	tup.ShrinkToFit()
	assert.Equal(t, uintptr(64), tup.Capacity()) // default capacity, above the 8-byte volume
	assert.GreaterOrEqual(t, tup.Capacity(), tup.Volume())
}

func TestOffsetAccumulatesPrecedingSizes(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, int8(1)))
	require.NoError(t, dynamictuple.Push(tup, int64(2)))

	off0, err := tup.Offset(0)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), off0)

	off1, err := tup.Offset(1)
	require.NoError(t, err)
	assert.Equal(t, uintptr(1), off1) // one int8 precedes index 1
}

func TestSwapExchangesContents(t *testing.T) {
	a := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(a, 1))

	b := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(b, "x"))
	require.NoError(t, dynamictuple.Push(b, "y"))

	a.Swap(b)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())

	v, err := dynamictuple.Get[int](b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

type plainValue struct{ N int }

func TestCloneCopiesPlainValuesByAssignment(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, plainValue{N: 5}))

	clone, err := tup.Clone()
	require.NoError(t, err)

	v, err := dynamictuple.Get[plainValue](clone, 0)
	require.NoError(t, err)
	assert.Equal(t, plainValue{N: 5}, v)
}

type failingCloner struct{ N int }

func (f failingCloner) Clone() (any, error) {
	return nil, errors.New("boom")
}

func TestCloneRollsBackOnFailureAndLeavesOriginalUnchanged(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 1))
	require.NoError(t, dynamictuple.Push(tup, failingCloner{N: 2}))

	_, err := tup.Clone()
	require.Error(t, err)

	// Original must be untouched.
	assert.Equal(t, 2, tup.Len())
	v, err := dynamictuple.Get[int](tup, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

type succeedingCloner struct{ N int }

func (s succeedingCloner) Clone() (any, error) {
	return succeedingCloner{N: s.N}, nil
}

func TestCloneInvokesClonerForEachMatchingElement(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, succeedingCloner{N: 7}))

	clone, err := tup.Clone()
	require.NoError(t, err)

	v, err := dynamictuple.Get[succeedingCloner](clone, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v.N)
}

type handle struct{ fd int }

func (handle) Uncopyable() {}

func TestCloneRejectsUncopyableElement(t *testing.T) {
	tup := dynamictuple.New()
	require.NoError(t, dynamictuple.Push(tup, 1))
	require.NoError(t, dynamictuple.Push(tup, handle{fd: 3}))

	_, err := tup.Clone()
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamictuple.ErrNotCopyable)

	// Original must be untouched.
	assert.Equal(t, 2, tup.Len())
	v, err := dynamictuple.Get[int](tup, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPushNilInterfaceReturnsError(t *testing.T) {
	tup := dynamictuple.New()
	var x any
	err := dynamictuple.Push(tup, x)
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamictuple.ErrNilValue)
}
