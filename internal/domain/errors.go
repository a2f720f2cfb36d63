package domain

import "errors"

var (
	// ErrOutOfRange indicates an index outside the valid bounds of the
	// itinerary or another positional collection.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates an operation targeted an identifier that does
	// not exist. Removal-style operations recover from this as a no-op;
	// update-style operations surface it to the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount indicates a negative, non-finite, or unparsable
	// monetary input.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidField indicates an attempt to update a non-editable or
	// unknown attribute.
	ErrInvalidField = errors.New("invalid field")
)
