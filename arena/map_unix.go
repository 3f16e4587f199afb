//go:build unix

package arena

import (
	"errors"

	"golang.org/x/sys/unix"
)

// mapAnon reserves size bytes of anonymous, private memory outside the Go
// heap. The returned cleanup unmaps the region; a double unmap is treated
// as a no-op for callers.
func mapAnon(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
