package cell

import (
	"os"

	"github.com/VictoriaMetrics/metrics"

	"github.com/joshuapare/refkit/boxed"
	"github.com/joshuapare/refkit/internal/goid"
)

// Runtime owner assertion - controlled by the REFKIT_OWNERCHECK env var,
// read once at startup.
var checkOwner = os.Getenv("REFKIT_OWNERCHECK") != ""

var borrowViolations = metrics.NewCounter("refkit_borrow_violations_total")

// Cell owns one boxed value and one borrow flag, and only hands the value
// out through guards that keep the flag honest. Reads go through shared
// guards, writes through the exclusive guard; a forbidden overlap is
// detected at acquire time, not after the damage is done.
//
// Cell is NOT safe for concurrent use. The flag is a plain integer and
// the cell must stay on its creating goroutine.
type Cell[T any] struct {
	noCopy noCopy
	box    *boxed.Box[T]
	fin    func(T)
	flag   Flag
	owner  int64 // creating goroutine; 0 when ownercheck is disabled
}

// New returns a cell holding v, unborrowed.
func New[T any](v T) *Cell[T] {
	return NewFinalizer(v, nil)
}

// NewFinalizer is New with a finalizer that Free runs against the stored
// value during teardown.
func NewFinalizer[T any](v T, fin func(T)) *Cell[T] {
	c := &Cell[T]{
		box: boxed.NewFinalizer(v, fin),
		fin: fin,
	}
	if checkOwner {
		c.owner = goid.Current()
	}
	return c
}

// TryBorrow starts a shared borrow and returns its guard. It fails with
// ErrMutablyBorrowed if and only if the exclusive guard is outstanding;
// any number of shared guards may coexist.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	c.use()
	if !c.flag.CanBorrow() {
		borrowViolations.Inc()
		return nil, ErrMutablyBorrowed
	}
	c.flag.Borrow()
	return &Ref[T]{cell: c}, nil
}

// Borrow is the forcing form of TryBorrow: it panics with
// ErrMutablyBorrowed instead of returning it.
func (c *Cell[T]) Borrow() *Ref[T] {
	g, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return g
}

// TryBorrowMut starts the exclusive borrow and returns its guard. It
// fails with ErrBorrowed if and only if any guard - shared or exclusive -
// is outstanding.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	c.use()
	if !c.flag.CanBorrowMut() {
		borrowViolations.Inc()
		return nil, ErrBorrowed
	}
	c.flag.BorrowMut()
	return &RefMut[T]{cell: c}, nil
}

// BorrowMut is the forcing form of TryBorrowMut: it panics with
// ErrBorrowed instead of returning it.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	g, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return g
}

// With runs fn under a shared guard. The guard is released on every exit
// path, including a panic inside fn.
func (c *Cell[T]) With(fn func(*T)) {
	g := c.Borrow()
	defer g.Release()
	fn(g.Get())
}

// WithMut runs fn under the exclusive guard, releasing on every exit path.
func (c *Cell[T]) WithMut(fn func(*T)) {
	g := c.BorrowMut()
	defer g.Release()
	fn(g.Get())
}

// Replace swaps the stored value with v under a short-lived exclusive
// guard and returns the previous value. Panics with ErrBorrowed if any
// guard is outstanding.
func (c *Cell[T]) Replace(v T) T {
	g := c.BorrowMut()
	defer g.Release()
	return g.Replace(v)
}

// Take moves the value out, consuming the cell; the finalizer does not
// run for a taken value. Permitted only while unborrowed: panics with
// ErrBorrowed if any guard is outstanding.
func (c *Cell[T]) Take() T {
	c.use()
	if !c.flag.CanBorrowMut() {
		borrowViolations.Inc()
		panic(ErrBorrowed)
	}
	return c.box.Take()
}

// Clone deep-copies the stored value with the supplied copy function and
// returns an independent cell with a fresh, unborrowed flag. The borrow
// bookkeeping is never shared between the two cells. The copy runs under
// a shared guard, so cloning while the exclusive guard is live panics.
func (c *Cell[T]) Clone(clone func(T) T) *Cell[T] {
	g := c.Borrow()
	defer g.Release()
	return NewFinalizer(clone(*g.Get()), c.fin)
}

// Borrowed reports whether any guard is outstanding.
func (c *Cell[T]) Borrowed() bool {
	return !c.flag.CanBorrowMut()
}

// Free tears the cell down, running the finalizer against the stored
// value. Teardown requires that no guard is live; a live guard means the
// program still holds a pointer into the cell, so Free panics rather than
// pull the value out from under it.
func (c *Cell[T]) Free() {
	c.use()
	if !c.flag.CanBorrowMut() {
		panic("cell: free with outstanding guards")
	}
	c.box.Free()
}

// use enforces the freed-cell and owner-goroutine contracts on every
// operation.
func (c *Cell[T]) use() {
	if c.box == nil || c.box.Empty() {
		panic("cell: use of freed cell")
	}
	if c.owner != 0 && c.owner != goid.Current() {
		panic("cell: cell used outside its owning goroutine")
	}
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
