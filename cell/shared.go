package cell

import (
	"github.com/joshuapare/refkit/rc"
)

// Shared is a reference-counted checked cell: one Cell owned jointly by a
// group of clones. All clones alias the same value and the same borrow
// flag; when the last clone is dropped the cell is freed and its
// finalizer runs.
//
// Shared is backed by the single-goroutine rc variant, so the whole clone
// group stays on one goroutine, like the cell it wraps.
type Shared[T any] struct {
	h rc.Handle[*Cell[T]]
}

// NewShared returns the first handle to a fresh cell holding v.
func NewShared[T any](v T) *Shared[T] {
	return NewSharedFinalizer(v, nil)
}

// NewSharedFinalizer is NewShared with a finalizer that runs against the
// stored value when the last clone is dropped.
func NewSharedFinalizer[T any](v T, fin func(T)) *Shared[T] {
	c := NewFinalizer(v, fin)
	return &Shared[T]{
		h: rc.NewFinalizer(c, func(c *Cell[T]) { c.Free() }),
	}
}

// Clone returns a new handle sharing the same cell and borrow flag.
func (s *Shared[T]) Clone() *Shared[T] {
	return &Shared[T]{h: s.h.Clone()}
}

// Drop retires this handle. The last drop frees the underlying cell,
// which panics if a guard is still outstanding.
func (s *Shared[T]) Drop() {
	s.h.Drop()
}

// Refs returns the number of live handles sharing the cell.
func (s *Shared[T]) Refs() int {
	return s.h.Refs()
}

// TryBorrow starts a shared borrow on the underlying cell.
func (s *Shared[T]) TryBorrow() (*Ref[T], error) {
	return s.cell().TryBorrow()
}

// Borrow is the forcing form of TryBorrow.
func (s *Shared[T]) Borrow() *Ref[T] {
	return s.cell().Borrow()
}

// TryBorrowMut starts the exclusive borrow on the underlying cell.
func (s *Shared[T]) TryBorrowMut() (*RefMut[T], error) {
	return s.cell().TryBorrowMut()
}

// BorrowMut is the forcing form of TryBorrowMut.
func (s *Shared[T]) BorrowMut() *RefMut[T] {
	return s.cell().BorrowMut()
}

// With runs fn under a shared guard, releasing on every exit path.
func (s *Shared[T]) With(fn func(*T)) {
	s.cell().With(fn)
}

// WithMut runs fn under the exclusive guard, releasing on every exit path.
func (s *Shared[T]) WithMut(fn func(*T)) {
	s.cell().WithMut(fn)
}

// Replace swaps the shared value and returns the previous one. Panics
// with ErrBorrowed if any guard is outstanding.
func (s *Shared[T]) Replace(v T) T {
	return s.cell().Replace(v)
}

func (s *Shared[T]) cell() *Cell[T] {
	return *s.h.Get()
}
