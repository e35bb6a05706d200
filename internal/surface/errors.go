package surface

import "errors"

// Errors returned by surface operations.
var (
	// ErrLineOutOfRange indicates a line number outside [1, LineCount].
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrNoSelection indicates a selection set with no primary range.
	ErrNoSelection = errors.New("no primary selection")
)
