// Package arena provides a fixed-size-slot byte arena with explicit
// allocate/free lifecycle, backed by an anonymous memory mapping.
//
// # Overview
//
// An Arena is the bulk counterpart to a boxed value: a contiguous region
// divided into equal slots, each allocated and freed by hand. The backing
// region lives outside the Go heap on unix (an anonymous mmap), so slot
// payloads are invisible to the garbage collector and their lifetime is
// exactly what the caller says it is. On other platforms the arena falls
// back to an ordinary heap buffer with identical semantics.
//
// # Usage
//
//	a, err := arena.New(256, 1024) // 1024 slots of 256 bytes
//	if err != nil {
//	    return err
//	}
//	ref, buf, err := a.Alloc()
//	// write into buf ...
//	err = a.Free(ref)
//	err = a.Close()
//
// Free slots are recycled in LIFO order. Slot contents are NOT zeroed on
// reuse; callers that care must clear the buffer themselves.
//
// # Safety
//
// The only enforcement is the double-free and bad-reference check on each
// operation; aliasing discipline within a slot is the caller's problem.
// Close refuses to tear down while slots are still allocated, since that
// would unmap memory the caller may still reference.
//
// # Thread safety
//
// Arena is not safe for concurrent use. Callers must synchronize
// externally.
package arena
