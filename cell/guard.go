package cell

// Ref is a shared (read) guard. While at least one Ref is live the
// exclusive guard cannot be acquired. Release returns the borrow; each
// guard releases exactly once, and a second Release panics.
//
// A Ref must not outlive its cell: Free refuses to run while guards are
// outstanding, which makes the dangling-guard state unreachable.
type Ref[T any] struct {
	cell     *Cell[T]
	released bool
}

// Get returns a pointer to the guarded value. The pointer must be treated
// as read-only and must not be retained past Release.
func (g *Ref[T]) Get() *T {
	if g.released {
		panic("cell: use of released guard")
	}
	return g.cell.box.Get()
}

// Release ends this shared borrow, decrementing the flag by one.
func (g *Ref[T]) Release() {
	if g.released {
		panic("cell: guard released twice")
	}
	g.released = true
	g.cell.flag.DropBorrow()
}

// RefMut is the exclusive (write) guard. While it is live no other guard
// of either kind can be acquired.
type RefMut[T any] struct {
	cell     *Cell[T]
	released bool
}

// Get returns a pointer to the guarded value for reading or writing. The
// pointer must not be retained past Release.
func (g *RefMut[T]) Get() *T {
	if g.released {
		panic("cell: use of released guard")
	}
	return g.cell.box.Get()
}

// Set overwrites the guarded value.
func (g *RefMut[T]) Set(v T) {
	*g.Get() = v
}

// Replace swaps the guarded value with v and returns the previous value.
func (g *RefMut[T]) Replace(v T) T {
	if g.released {
		panic("cell: use of released guard")
	}
	return g.cell.box.Replace(v)
}

// Release ends the exclusive borrow, returning the flag to unborrowed.
func (g *RefMut[T]) Release() {
	if g.released {
		panic("cell: guard released twice")
	}
	g.released = true
	g.cell.flag.DropBorrowMut()
}
