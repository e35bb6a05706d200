package adapter

import "errors"

// Errors returned by adapter glue.
var (
	// ErrInvalidChart indicates a chart definition that is not valid JSON
	// or does not match the expected schema.
	ErrInvalidChart = errors.New("invalid chart definition")

	// ErrEmptyDiagram indicates diagram source with no content.
	ErrEmptyDiagram = errors.New("empty diagram source")
)
