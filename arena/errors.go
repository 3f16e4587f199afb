package arena

import "errors"

var (
	// ErrFull indicates that every slot is allocated.
	ErrFull = errors.New("arena: no free slot")

	// ErrBadRef indicates an out-of-range slot reference.
	ErrBadRef = errors.New("arena: bad slot reference")

	// ErrNotAllocated indicates a reference to a slot that is not
	// currently allocated (typically a double free).
	ErrNotAllocated = errors.New("arena: slot is not allocated")

	// ErrLive indicates Close was called while slots are still allocated.
	ErrLive = errors.New("arena: close with live slots")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("arena: closed")
)
