package domain

import "errors"

// Invariant violations raised by entity constructors and mutators. Any
// operation that trips one of these must abort; they are never recoverable.
var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long")

	ErrEmptyMessageContent   = errors.New("message cannot be empty")
	ErrMessageContentTooLong = errors.New("message is too long")

	ErrUserAlreadyActive   = errors.New("user is already active")
	ErrUserAlreadyInactive = errors.New("user is already inactive")
	ErrUserInactive        = errors.New("inactive user cannot go online")

	ErrPrivateRoomSize      = errors.New("private room must have exactly two members")
	ErrPrivateRoomImmutable = errors.New("cannot change members of a private room")
	ErrOwnerCannotLeave     = errors.New("owner cannot leave the room")
	ErrUserAlreadyInRoom    = errors.New("user is already in the room")
	ErrUserNotInRoom        = errors.New("user is not in the room")

	ErrSystemMessageHasSender = errors.New("system message cannot have a sender")
	ErrTextMessageNoSender    = errors.New("text message must have a sender")
)
