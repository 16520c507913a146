package wheel

import "errors"

var (
	// ErrNoValues is returned when a picker is given an empty value list.
	ErrNoValues = errors.New("wheel: value list is empty")
	// ErrInvalidLineHeight is returned for a line height that is not a
	// positive finite number.
	ErrInvalidLineHeight = errors.New("wheel: line height must be positive and finite")
)
