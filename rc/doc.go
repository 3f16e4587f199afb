// Package rc provides reference-counted shared ownership of a heap value.
//
// # Overview
//
// A handle is an alias to one boxed value plus a shared count of live
// aliases. Clone creates another alias (count+1), Drop retires one
// (count-1), and whichever Drop observes the count reach zero frees the
// underlying slot and runs its finalizer - exactly once, no matter how
// many aliases existed or in what order they were dropped.
//
// Two variants implement the same Handle capability set. The variant is
// selected at construction and never mixed for one value:
//
//   - Rc: plain integer count. Cheapest possible bookkeeping, but the
//     whole clone group must stay on a single goroutine. NOT safe for
//     concurrent use.
//   - Arc: atomic count. Clone and Drop are safe under arbitrary
//     goroutine interleavings; exactly one Drop performs teardown.
//
// # Usage
//
//	h := rc.NewFinalizer(conn, func(c net.Conn) { c.Close() })
//	c := h.Clone()
//	c.Drop()
//	h.Drop() // finalizer runs here, on the last drop
//
// # Invariants
//
// The count always equals the number of live handles. Bypassing
// Clone/Drop - for example by copying a handle struct by value - breaks
// the invariant and is reported with a panic as soon as it is observed.
// A dropped handle poisons itself; any later use panics.
//
// # Single-goroutine enforcement
//
// Go has no compile-time ownership transfer rules, so the Rc restriction
// is enforced three ways: documentation, go vet's copylocks check (the
// handle types carry a no-copy marker), and an opt-in runtime assertion.
// Set REFKIT_OWNERCHECK=1 and Rc records its creating goroutine and
// panics on use from any other.
//
// # Weak references
//
// There are none. A cycle of handles keeps itself alive forever; breaking
// cycles is the caller's problem. Whether a non-owning weak handle is
// worth adding remains undecided.
package rc
