package rc

import (
	"github.com/joshuapare/refkit/boxed"
	"github.com/joshuapare/refkit/internal/goid"
)

// rcShared is the record all handles in one Rc clone group alias: the
// boxed value plus a plain integer count.
type rcShared[T any] struct {
	box   *boxed.Box[T]
	count int
	owner int64 // creating goroutine; 0 when ownercheck is disabled
}

// Rc is the single-goroutine handle variant. The count is a plain integer
// with no synchronization, so the entire clone group must live and die on
// the goroutine that created it. Rc is NOT safe for concurrent use; for
// cross-goroutine ownership use Arc.
type Rc[T any] struct {
	noCopy noCopy
	shared *rcShared[T]
}

// New boxes v and returns the first handle to it, with a count of 1.
func New[T any](v T) *Rc[T] {
	return NewFinalizer(v, nil)
}

// NewFinalizer is New with a finalizer that runs against the value when
// the last handle is dropped.
func NewFinalizer[T any](v T, fin func(T)) *Rc[T] {
	s := &rcShared[T]{
		box:   boxed.NewFinalizer(v, fin),
		count: 1,
	}
	if checkOwner {
		s.owner = goid.Current()
	}
	return &Rc[T]{shared: s}
}

// Clone registers a new alias and returns it. Panics if the handle has
// already been dropped.
func (h *Rc[T]) Clone() Handle[T] {
	s := h.use()
	if s.count <= 0 {
		panic("rc: refcount invariant violated")
	}
	s.count++
	handlesCloned.Inc()
	return &Rc[T]{shared: s}
}

// Drop retires this alias. The drop that takes the count to zero frees the
// boxed value, running its finalizer. The handle must not be used again.
func (h *Rc[T]) Drop() {
	s := h.use()
	h.shared = nil // poison: further use of this handle panics
	s.count--
	handlesDropped.Inc()
	switch {
	case s.count == 0:
		s.box.Free()
	case s.count < 0:
		panic("rc: refcount invariant violated")
	}
}

// Get returns a pointer to the shared value, valid while any sibling
// handle is live.
func (h *Rc[T]) Get() *T {
	return h.use().box.Get()
}

// Refs returns the number of live handles in this clone group.
func (h *Rc[T]) Refs() int {
	return h.use().count
}

// use fetches the shared record, enforcing the dropped-handle and
// owner-goroutine contracts.
func (h *Rc[T]) use() *rcShared[T] {
	s := h.shared
	if s == nil {
		panic("rc: use of dropped handle")
	}
	if s.owner != 0 && s.owner != goid.Current() {
		panic("rc: Rc handle used outside its owning goroutine")
	}
	return s
}
