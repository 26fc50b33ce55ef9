package room

import "errors"

// ErrRoomNotFound is returned when a room ID is unknown
var ErrRoomNotFound = errors.New("room does not exist")

// ErrRoomFull is returned when every seat in the room is taken
var ErrRoomFull = errors.New("room is full")

// ErrRoomClosed is returned when a room shut down before the request ran
var ErrRoomClosed = errors.New("room is closed")
