package widget

import "errors"

var (
	// ErrEmptyInput is returned by Add when the trimmed input is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrItemNotFound is returned by Delete for an id that is not in the container.
	ErrItemNotFound = errors.New("item not found")
	// ErrMissingElement is returned by New when a required element is nil.
	ErrMissingElement = errors.New("missing element")
)
