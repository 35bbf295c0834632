package catalog

import "errors"

var (
	ErrNotFound        = errors.New("room not found")
	ErrInvalidRoomType = errors.New("invalid room type")
)
