package arena

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

var (
	slotsAllocated = metrics.NewCounter("refkit_arena_slots_allocated_total")
	slotsFreed     = metrics.NewCounter("refkit_arena_slots_freed_total")
)

// Ref identifies one slot within its arena. References are only
// meaningful to the arena that issued them.
type Ref int32

const (
	slotFree      = 0
	slotAllocated = 1
)

// Arena is a fixed-size-slot allocator over one contiguous backing
// region. Not safe for concurrent use.
type Arena struct {
	data     []byte
	unmap    func() error
	slotSize int
	state    []uint8 // per-slot allocation state, for double-free detection
	freeList []Ref   // LIFO recycle stack
	live     int
	closed   bool
}

// New maps a region of slotSize*numSlots bytes and returns an arena over
// it with every slot free.
func New(slotSize, numSlots int) (*Arena, error) {
	if slotSize <= 0 || numSlots <= 0 {
		return nil, fmt.Errorf("arena: invalid geometry %dx%d", slotSize, numSlots)
	}
	data, unmap, err := mapAnon(slotSize * numSlots)
	if err != nil {
		return nil, fmt.Errorf("arena: map backing region: %w", err)
	}

	a := &Arena{
		data:     data,
		unmap:    unmap,
		slotSize: slotSize,
		state:    make([]uint8, numSlots),
		freeList: make([]Ref, 0, numSlots),
	}
	// Seed the free list so the first allocations hand out slot 0 upward.
	for i := numSlots - 1; i >= 0; i-- {
		a.freeList = append(a.freeList, Ref(i))
	}
	return a, nil
}

// Alloc reserves a free slot and returns its reference and payload
// buffer. Returns ErrFull when every slot is allocated. Reused slots keep
// their previous contents.
func (a *Arena) Alloc() (Ref, []byte, error) {
	if a.closed {
		return 0, nil, ErrClosed
	}
	if len(a.freeList) == 0 {
		return 0, nil, ErrFull
	}
	ref := a.freeList[len(a.freeList)-1]
	a.freeList = a.freeList[:len(a.freeList)-1]
	a.state[ref] = slotAllocated
	a.live++
	slotsAllocated.Inc()
	return ref, a.slot(ref), nil
}

// Bytes returns the payload buffer for an allocated slot.
func (a *Arena) Bytes(ref Ref) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if err := a.check(ref); err != nil {
		return nil, err
	}
	return a.slot(ref), nil
}

// Free returns a slot to the free list. Freeing an unallocated or
// out-of-range reference reports an error and changes nothing.
func (a *Arena) Free(ref Ref) error {
	if a.closed {
		return ErrClosed
	}
	if err := a.check(ref); err != nil {
		return err
	}
	a.state[ref] = slotFree
	a.freeList = append(a.freeList, ref)
	a.live--
	slotsFreed.Inc()
	return nil
}

// Live returns the number of currently allocated slots.
func (a *Arena) Live() int {
	return a.live
}

// Cap returns the total number of slots.
func (a *Arena) Cap() int {
	return len(a.state)
}

// Close releases the backing region. It fails with ErrLive while slots
// are still allocated: unmapping under a live reference would leave the
// caller holding a buffer into unmapped memory. Close is idempotent.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	if a.live > 0 {
		return ErrLive
	}
	a.closed = true
	a.data = nil
	return a.unmap()
}

func (a *Arena) check(ref Ref) error {
	if ref < 0 || int(ref) >= len(a.state) {
		return ErrBadRef
	}
	if a.state[ref] != slotAllocated {
		return ErrNotAllocated
	}
	return nil
}

func (a *Arena) slot(ref Ref) []byte {
	off := int(ref) * a.slotSize
	return a.data[off : off+a.slotSize : off+a.slotSize]
}
