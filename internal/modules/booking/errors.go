package booking

import "errors"

var (
	ErrNotFound     = errors.New("booking not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrValidation   = errors.New("validation error")
)
