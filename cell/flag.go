package cell

// Flag is the tri-state borrow tracker: 0 unborrowed, N>0 live shared
// borrows, -1 one live exclusive borrow. It tracks access to a value it
// does not itself store, so it can be embedded in caller-defined types
// that want Cell-style bookkeeping over their own storage.
//
// Flag is a plain integer with no synchronization; it belongs to one
// goroutine. Transitions other than the ones below never occur as long as
// every Borrow/BorrowMut is paired with its matching Drop:
//
//	0 -> N -> N+1 and back (shared), 0 -> -1 -> 0 (exclusive)
type Flag struct {
	n int
}

// CanBorrow reports whether a shared borrow may start: true unless an
// exclusive borrow is live.
func (f *Flag) CanBorrow() bool {
	return f.n >= 0
}

// CanBorrowMut reports whether an exclusive borrow may start: true only
// when no borrow of either kind is live. The same predicate gates taking
// the value out.
func (f *Flag) CanBorrowMut() bool {
	return f.n == 0
}

// Borrow records the start of a shared borrow. Callers must have checked
// CanBorrow; starting a shared borrow over a live exclusive borrow
// corrupts the state.
func (f *Flag) Borrow() {
	f.n++
}

// DropBorrow records the end of one shared borrow.
func (f *Flag) DropBorrow() {
	if f.n <= 0 {
		panic("cell: unbalanced shared borrow release")
	}
	f.n--
}

// BorrowMut records the start of the exclusive borrow. Callers must have
// checked CanBorrowMut.
func (f *Flag) BorrowMut() {
	f.n = -1
}

// DropBorrowMut records the end of the exclusive borrow, returning the
// flag to unborrowed.
func (f *Flag) DropBorrowMut() {
	if f.n != -1 {
		panic("cell: unbalanced exclusive borrow release")
	}
	f.n = 0
}

// Reading returns the number of live shared borrows, 0 if none or if the
// exclusive borrow is live.
func (f *Flag) Reading() int {
	if f.n > 0 {
		return f.n
	}
	return 0
}

// Writing reports whether the exclusive borrow is live.
func (f *Flag) Writing() bool {
	return f.n == -1
}
