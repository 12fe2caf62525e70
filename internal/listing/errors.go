package listing

import "errors"

var (
	// ErrOutOfRange reports a page request beyond the computed bounds.
	// Navigation handlers answer it with a notice and leave the user's
	// tracked page untouched.
	ErrOutOfRange = errors.New("listing: page out of range")

	// ErrNotFound reports a short id that was never minted in this
	// process lifetime, typically a tap on a menu from before a restart.
	ErrNotFound = errors.New("listing: ref not found")
)
