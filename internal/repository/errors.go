package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist, regardless of the
	// backing store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned when a write violates a foreign key,
	// e.g. a booking pointing at a room that vanished between the service
	// check and the insert.
	ErrInvalidReference = errors.New("invalid reference")
)
