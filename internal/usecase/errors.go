package usecase

import "errors"

// Application errors raised by use cases. The boundary layer maps them to
// caller-visible outcomes (conflict, not-found, unauthorized).
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrRoomAlreadyExists  = errors.New("private room already exists")
	ErrRoomNotFound       = errors.New("room not found")
	ErrSecondUserRequired = errors.New("second user is required for private room")
)
