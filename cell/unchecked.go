package cell

// Unchecked is the escape hatch: a mutable slot with zero enforcement.
// No borrow flag, no guards, no goroutine checks. It exists for code that
// has proven its aliasing discipline some other way and cannot afford the
// flag bookkeeping.
//
// Use at your own risk. Concurrent access, or overlapping reads and
// writes on one goroutine, are the caller's responsibility; nothing here
// will detect a violation.
type Unchecked[T any] struct {
	v T
}

// NewUnchecked returns an unchecked slot holding v.
func NewUnchecked[T any](v T) *Unchecked[T] {
	return &Unchecked[T]{v: v}
}

// Get returns a pointer to the slot, usable for both reads and writes.
func (u *Unchecked[T]) Get() *T {
	return &u.v
}

// Set overwrites the slot.
func (u *Unchecked[T]) Set(v T) {
	u.v = v
}

// Replace swaps the slot's value with v and returns the previous value.
func (u *Unchecked[T]) Replace(v T) T {
	old := u.v
	u.v = v
	return old
}
