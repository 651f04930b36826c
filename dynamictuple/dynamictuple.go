// Package dynamictuple implements a heterogeneous, densely packed
// container: values of arbitrary, unrelated types are pushed onto one
// tuple and retrieved later by index and expected type.
//
// Go generics can't type-erase storage into a raw byte buffer the way
// the C++ original does (no placement-new, no manual move/destroy), so
// each element is held as a boxed interface{} value — moving or
// destroying one is then just ordinary, infallible Go assignment /
// garbage collection. capacity/volume/reserve/shrink_to_fit are kept as
// a faithful bookkeeping layer over that boxed storage (mirroring the
// original's byte-budget accounting) rather than literally gating the
// growth of the underlying Go slice, which append already manages.
package dynamictuple

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

const (
	defaultCapacity      = 64
	capacityGrowthFactor = 2
)

// Sentinel error kinds, comparable with errors.Is.
var (
	ErrNotCopyable     = errors.New("dynamictuple: element type does not support copying")
	ErrTypeMismatch    = errors.New("dynamictuple: stored type does not match requested type")
	ErrIndexOutOfRange = errors.New("dynamictuple: index out of range")
	ErrNilValue        = errors.New("dynamictuple: cannot push an untyped nil value")
)

// Cloner is implemented by element types whose copy can fail, e.g. one
// that deep-copies a handle to an external resource. Tuple.Clone calls
// Clone on any element that implements it; elements that don't are
// copied by plain assignment, which is always safe for a Go value.
type Cloner interface {
	Clone() (any, error)
}

// Uncopyable is implemented by element types that must never be
// duplicated, the Go analogue of the original's compile-time
// is_copy_constructible check: Go has no such trait, so a type opts out
// of copying explicitly instead. Tuple.Clone refuses to clone a tuple
// holding one, returning ErrNotCopyable rather than aliasing it.
type Uncopyable interface {
	Uncopyable()
}

type record struct {
	value  any
	typeID uint64
	typ    reflect.Type
	size   uintptr
}

// Tuple is a heterogeneous linear container. The zero value is not
// usable; construct with New.
type Tuple struct {
	records  []record
	volume   uintptr
	capacity uintptr
}

// New returns an empty Tuple with the default starting capacity.
func New() *Tuple {
	return &Tuple{capacity: defaultCapacity}
}

func fingerprint(t reflect.Type) uint64 {
	return xxhash.Sum64String(t.String())
}

// Push appends x to the end of the tuple, growing capacity if needed.
// Returns ErrNilValue if x is a nil interface value, since a nil value
// carries no runtime type and would break type-checked Get.
func Push[T any](t *Tuple, x T) error {
	typ := reflect.TypeOf(x)
	if typ == nil {
		return errors.WithStack(ErrNilValue)
	}
	size := typ.Size()
	if err := t.reserve(t.volume + size); err != nil {
		return errors.Wrapf(err, "dynamictuple: push of type %s", typ)
	}
	t.records = append(t.records, record{value: x, typeID: fingerprint(typ), typ: typ, size: size})
	t.volume += size
	return nil
}

// Pop removes the last element. Returns ErrIndexOutOfRange if the tuple
// is empty.
func (t *Tuple) Pop() error {
	if len(t.records) == 0 {
		return errors.WithStack(ErrIndexOutOfRange)
	}
	last := t.records[len(t.records)-1]
	t.records = t.records[:len(t.records)-1]
	t.volume -= last.size
	return nil
}

// Get retrieves the element at index i, type-checked against T. Returns
// ErrTypeMismatch if the stored value's type is not T, or
// ErrIndexOutOfRange if i is out of bounds.
func Get[T any](t *Tuple, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.records) {
		return zero, errors.WithStack(ErrIndexOutOfRange)
	}
	v, ok := t.records[i].value.(T)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "stored type %s", t.records[i].typ)
	}
	return v, nil
}

// Len reports the number of elements in the tuple.
func (t *Tuple) Len() int { return len(t.records) }

// Volume reports the combined logical size of all stored elements.
func (t *Tuple) Volume() uintptr { return t.volume }

// Capacity reports the tuple's current budgeted capacity.
func (t *Tuple) Capacity() uintptr { return t.capacity }

// Empty reports whether the tuple holds no elements.
func (t *Tuple) Empty() bool { return len(t.records) == 0 }

// Offset reports the cumulative logical size of every element preceding
// index i — the analogue of the original's byte offset, since there is
// no single raw buffer here to measure an offset into.
func (t *Tuple) Offset(i int) (uintptr, error) {
	if i < 0 || i >= len(t.records) {
		return 0, errors.WithStack(ErrIndexOutOfRange)
	}
	var off uintptr
	for j := 0; j < i; j++ {
		off += t.records[j].size
	}
	return off, nil
}

// Type returns the runtime type stored at index i.
func (t *Tuple) Type(i int) (reflect.Type, error) {
	if i < 0 || i >= len(t.records) {
		return nil, errors.WithStack(ErrIndexOutOfRange)
	}
	return t.records[i].typ, nil
}

// Clear removes every element. Capacity is unchanged.
func (t *Tuple) Clear() {
	t.records = t.records[:0]
	t.volume = 0
}

// Reserve grows the tuple's budgeted capacity to at least newCapacity,
// doubling at minimum. A no-op if newCapacity does not exceed the
// current capacity.
func (t *Tuple) Reserve(newCapacity uintptr) error {
	return t.reserve(newCapacity)
}

func (t *Tuple) reserve(newCapacity uintptr) error {
	if newCapacity <= t.capacity {
		return nil
	}
	grown := t.capacity * capacityGrowthFactor
	if grown < newCapacity {
		grown = newCapacity
	}
	t.capacity = grown
	return nil
}

// ShrinkToFit reduces budgeted capacity to fit the current volume
// (never below defaultCapacity).
func (t *Tuple) ShrinkToFit() {
	newCap := uintptr(defaultCapacity)
	if t.volume > newCap {
		newCap = t.volume
	}
	t.capacity = newCap
}

// Swap exchanges the contents of t and other in place.
func (t *Tuple) Swap(other *Tuple) {
	t.records, other.records = other.records, t.records
	t.volume, other.volume = other.volume, t.volume
	t.capacity, other.capacity = other.capacity, t.capacity
}

// Clone deep-copies the tuple. Elements implementing Cloner are cloned
// via Clone; elements implementing Uncopyable cause the whole clone to
// fail with ErrNotCopyable; all others are copied by plain interface
// assignment, which can't fail for a Go value. If any element fails to
// copy, the partially built copy is discarded (nothing to explicitly
// destroy — garbage collection reclaims it) and the error is returned
// wrapped with the offending element's index and type; the receiver is
// left unchanged.
func (t *Tuple) Clone() (*Tuple, error) {
	out := &Tuple{records: make([]record, 0, len(t.records)), capacity: t.capacity}
	for i, rec := range t.records {
		cloned := rec.value
		switch v := rec.value.(type) {
		case Cloner:
			c, err := v.Clone()
			if err != nil {
				return nil, errors.Wrapf(err, "dynamictuple: clone failed for element %d (type %s)", i, rec.typ)
			}
			cloned = c
		case Uncopyable:
			return nil, errors.Wrapf(ErrNotCopyable, "element %d (type %s)", i, rec.typ)
		}
		out.records = append(out.records, record{value: cloned, typeID: rec.typeID, typ: rec.typ, size: rec.size})
		out.volume += rec.size
	}
	return out, nil
}
