package rc

import (
	"os"

	"github.com/VictoriaMetrics/metrics"
)

// Runtime owner assertion for single-goroutine handles - controlled by the
// REFKIT_OWNERCHECK env var, read once at startup.
var checkOwner = os.Getenv("REFKIT_OWNERCHECK") != ""

var (
	handlesCloned  = metrics.NewCounter("refkit_handles_cloned_total")
	handlesDropped = metrics.NewCounter("refkit_handles_dropped_total")
)

// Handle is the capability set shared by both reference-counted variants:
// clone, drop, and dereference. Concrete values are created by New (Rc)
// or NewAtomic (Arc); the two variants must never alias the same value.
type Handle[T any] interface {
	// Clone registers a new alias to the shared value and returns it.
	Clone() Handle[T]

	// Drop retires this alias. The drop that retires the last alias frees
	// the shared value and runs its finalizer. The handle is unusable
	// afterwards; any further call panics.
	Drop()

	// Get returns a pointer to the shared value, valid for as long as any
	// sibling handle is live.
	Get() *T

	// Refs returns the number of live handles aliasing the shared value.
	// For Arc this is a point-in-time snapshot that may be stale by the
	// time it returns.
	Refs() int
}

// noCopy makes `go vet -copylocks` flag by-value copies of the types that
// embed it. Copying a handle without Clone would alias the shared value
// without adjusting the count.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
