package decoration

import "errors"

// Errors returned by the builder.
var (
	// ErrOutOfOrder indicates a decoration was added with a From before
	// the previous decoration's From.
	ErrOutOfOrder = errors.New("decoration out of order")

	// ErrInvalidSpan indicates a decoration span with To < From.
	ErrInvalidSpan = errors.New("invalid decoration span")
)
