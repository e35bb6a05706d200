package livemark

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoDocument indicates a selection change arrived before any
	// document snapshot.
	ErrNoDocument = errors.New("no document")

	// ErrClosed indicates the engine has been closed.
	ErrClosed = errors.New("engine closed")
)
