// Package boxed provides explicit heap slot management for single values.
//
// # Overview
//
// A Box is the building block the rest of refkit is layered on: one value
// placed in its own heap slot, destroyed exactly once when its owner says
// so. It deliberately has no safety net of its own - no borrow tracking, no
// reference counting, no goroutine checks. Those disciplines are added by
// the rc and cell packages, which delegate raw storage here so the unsafe
// lifecycle code exists in exactly one place.
//
// # Lifecycle
//
//	b := boxed.NewFinalizer(conn, func(c net.Conn) { c.Close() })
//	v := b.Get()    // unchecked access, caller manages aliasing
//	b.Free()        // finalizer runs, slot is dropped
//
// Free must be called exactly once. Calling it twice, or using the box
// after Free or Take, is a contract violation: Free reports it with a
// panic, Get simply returns a nil pointer.
//
// # Static values
//
// Static promotes a value to process-wide lifetime, the moral equivalent of
// leaking a heap allocation on purpose. It has no Free and is safe to copy
// and share across goroutines as long as nobody mutates through it.
//
// # Thread safety
//
// Box is not safe for concurrent use. Callers must synchronize externally
// or use the rc package's atomic variant for cross-goroutine ownership.
package boxed
