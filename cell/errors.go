package cell

import "errors"

var (
	// ErrBorrowed indicates an exclusive acquire failed because a guard of
	// either kind is outstanding.
	ErrBorrowed = errors.New("cell: already borrowed")

	// ErrMutablyBorrowed indicates a shared acquire failed because an
	// exclusive guard is outstanding.
	ErrMutablyBorrowed = errors.New("cell: already mutably borrowed")
)
