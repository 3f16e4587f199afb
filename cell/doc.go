// Package cell provides a runtime-checked interior-mutability container.
//
// # Overview
//
// Cell turns the shared-XOR-exclusive aliasing rule into a runtime
// invariant: any number of concurrent readers, or exactly one writer,
// never both. Each access is witnessed by a guard; acquiring a guard
// advances a tri-state borrow flag and releasing it reverses the effect.
//
// Borrow state machine (initial state 0):
//
//	state 0   (unborrowed)  -> shared acquire ok (1), exclusive acquire ok (-1)
//	state N>0 (N readers)   -> shared acquire ok (N+1), exclusive acquire fails
//	state -1  (one writer)  -> every acquire fails
//
// # Usage
//
//	c := cell.New(42)
//	g := c.Borrow()        // shared guard
//	fmt.Println(*g.Get())
//	g.Release()
//
//	w := c.BorrowMut()     // exclusive guard
//	*w.Get() = 43
//	w.Release()
//
// The Try forms return ErrBorrowed/ErrMutablyBorrowed instead of
// panicking, for callers that want to branch on contention. With and
// WithMut scope the guard to a callback and release on every exit path,
// including panic unwinding.
//
// # Contract violations
//
// Releasing a guard twice, using a released guard, freeing a cell with a
// live guard, or using a freed cell are programmer errors and panic.
// They are never returned as errors; the only recoverable condition is a
// failed Try acquire.
//
// # Thread safety
//
// Cell and Flag are NOT safe for concurrent use: the borrow flag is a
// plain integer and the whole cell must stay on one goroutine. Set
// REFKIT_OWNERCHECK=1 to assert that at runtime. Shared composes a cell
// with an rc handle for shared ownership on one goroutine; Unchecked is
// the zero-enforcement escape hatch.
package cell
