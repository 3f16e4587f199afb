package boxed

import (
	"github.com/VictoriaMetrics/metrics"
)

var (
	boxesAllocated = metrics.NewCounter("refkit_boxes_allocated_total")
	boxesFreed     = metrics.NewCounter("refkit_boxes_freed_total")
	boxesLive      = metrics.NewGauge("refkit_boxes_live", nil)
)

// Box owns one heap-resident value with an explicit, caller-triggered end
// of life. The zero value is empty and unusable; construct with New or
// NewFinalizer.
//
// Box performs no aliasing or concurrency enforcement. It is the
// uncontrolled fast path; every safety discipline in refkit lives in the
// layers above it.
type Box[T any] struct {
	slot *T
	fin  func(T)
}

// New places v in a fresh heap slot and returns the owning Box.
//
// Allocation failure is fatal (the Go runtime aborts); there is no
// recoverable error path.
func New[T any](v T) *Box[T] {
	return NewFinalizer(v, nil)
}

// NewFinalizer is New with a finalizer that Free runs against the stored
// value before dropping the slot. A nil fin is allowed and means Free only
// drops the slot.
func NewFinalizer[T any](v T, fin func(T)) *Box[T] {
	boxesAllocated.Inc()
	boxesLive.Inc()
	return &Box[T]{slot: &v, fin: fin}
}

// Get returns a pointer to the stored value. The same pointer serves both
// shared and exclusive access; the caller is solely responsible for not
// reading and writing it under conflicting access. After Free or Take the
// returned pointer is nil.
func (b *Box[T]) Get() *T {
	return b.slot
}

// Take moves the value out, leaving the box logically empty. The finalizer
// does not run for a taken value; ownership transfers to the caller.
// Using the box after Take is a contract violation.
func (b *Box[T]) Take() T {
	if b.slot == nil {
		panic("boxed: take from empty box")
	}
	v := *b.slot
	b.drop()
	return v
}

// Replace swaps the stored value with v and returns the previous value.
func (b *Box[T]) Replace(v T) T {
	if b.slot == nil {
		panic("boxed: replace on empty box")
	}
	old := *b.slot
	*b.slot = v
	return old
}

// Empty reports whether the value has been taken or freed.
func (b *Box[T]) Empty() bool {
	return b.slot == nil
}

// Free runs the finalizer against the stored value, then drops the slot so
// the garbage collector can reclaim it. It must be called exactly once per
// box; a second call (or a call after Take) panics.
func (b *Box[T]) Free() {
	if b.slot == nil {
		panic("boxed: double free")
	}
	if b.fin != nil {
		b.fin(*b.slot)
	}
	b.drop()
}

// drop empties the slot and updates lifecycle accounting.
func (b *Box[T]) drop() {
	b.slot = nil
	b.fin = nil
	boxesFreed.Inc()
	boxesLive.Dec()
}
