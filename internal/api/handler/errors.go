package handler

import (
	"errors"

	"roomchat/backend/internal/domain"
)

func isDomainConflict(err error) bool {
	return errors.Is(err, domain.ErrUserAlreadyInRoom) ||
		errors.Is(err, domain.ErrUserNotInRoom) ||
		errors.Is(err, domain.ErrOwnerCannotLeave) ||
		errors.Is(err, domain.ErrPrivateRoomImmutable)
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyRoomName) ||
		errors.Is(err, domain.ErrRoomNameTooLong) ||
		errors.Is(err, domain.ErrEmptyMessageContent) ||
		errors.Is(err, domain.ErrMessageContentTooLong) ||
		errors.Is(err, domain.ErrPrivateRoomSize)
}
