//go:build !unix

package arena

// mapAnon on platforms without anonymous mmap support falls back to an
// ordinary heap buffer. Semantics are identical; the region is simply
// managed by the garbage collector instead of the kernel.
func mapAnon(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
