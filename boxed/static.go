package boxed

// Static holds a value promoted to process-wide lifetime. It is the
// deliberate-leak primitive: the slot is never freed, so the pointer stays
// valid for the rest of the program.
//
// Static is freely copyable and safe to share across goroutines provided
// the value is treated as read-only. It carries no reference count and no
// borrow tracking; mutating through it from multiple goroutines is a data
// race.
type Static[T any] struct {
	v *T
}

// NewStatic moves v to the heap for the remaining lifetime of the process.
func NewStatic[T any](v T) Static[T] {
	return Static[T]{v: &v}
}

// Get returns a pointer to the leaked value. Callers must not mutate
// through it; Static exists for read-only sharing.
func (s Static[T]) Get() *T {
	return s.v
}
