package rc

import (
	"sync/atomic"

	"github.com/joshuapare/refkit/boxed"
)

// arcShared is the record all handles in one Arc clone group alias.
type arcShared[T any] struct {
	box   *boxed.Box[T]
	count atomic.Int64
}

// Arc is the cross-goroutine handle variant. The count is a linearizable
// atomic integer, so concurrent Clone and Drop calls through sibling
// handles never corrupt it and exactly one Drop observes the transition
// to zero and performs teardown.
//
// Go's atomic read-modify-write operations are sequentially consistent,
// which is strictly stronger than the acquire ordering the final decrement
// needs: every write made through a sibling handle happens before the
// freeing goroutine runs the finalizer.
//
// Each individual handle still belongs to one goroutine at a time; it is
// the clone group, not a single *Arc value, that may span goroutines.
type Arc[T any] struct {
	noCopy noCopy
	shared *arcShared[T]
}

// NewAtomic boxes v and returns the first handle to it, with a count of 1.
func NewAtomic[T any](v T) *Arc[T] {
	return NewAtomicFinalizer(v, nil)
}

// NewAtomicFinalizer is NewAtomic with a finalizer that runs against the
// value when the last handle is dropped, on whichever goroutine performs
// the last drop.
func NewAtomicFinalizer[T any](v T, fin func(T)) *Arc[T] {
	s := &arcShared[T]{box: boxed.NewFinalizer(v, fin)}
	s.count.Store(1)
	return &Arc[T]{shared: s}
}

// Clone registers a new alias and returns it. Safe to call concurrently
// through sibling handles.
func (h *Arc[T]) Clone() Handle[T] {
	s := h.use()
	if s.count.Add(1) <= 1 {
		// The count was already zero or negative: the group was torn down
		// while this handle was still around, which means the count
		// invariant was broken earlier.
		panic("rc: refcount invariant violated")
	}
	handlesCloned.Inc()
	return &Arc[T]{shared: s}
}

// Drop retires this alias. Exactly one concurrent Drop observes the count
// reach zero and frees the boxed value. The handle must not be used again.
func (h *Arc[T]) Drop() {
	s := h.use()
	h.shared = nil
	handlesDropped.Inc()
	switch n := s.count.Add(-1); {
	case n == 0:
		s.box.Free()
	case n < 0:
		panic("rc: refcount invariant violated")
	}
}

// Get returns a pointer to the shared value, valid while any sibling
// handle is live. Mutating through it requires external synchronization;
// the count protects the value's lifetime, not its contents.
func (h *Arc[T]) Get() *T {
	return h.use().box.Get()
}

// Refs returns a point-in-time snapshot of the live handle count.
func (h *Arc[T]) Refs() int {
	return int(h.use().count.Load())
}

func (h *Arc[T]) use() *arcShared[T] {
	s := h.shared
	if s == nil {
		panic("rc: use of dropped handle")
	}
	return s
}
