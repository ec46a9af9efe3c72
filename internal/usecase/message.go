package usecase

import (
	"context"

	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/repository"
)

// SendMessage stores a TEXT message authored by a room member.
type SendMessage struct {
	uow repository.UnitOfWork
}

func NewSendMessage(uow repository.UnitOfWork) *SendMessage {
	return &SendMessage{uow: uow}
}

func (uc *SendMessage) Execute(ctx context.Context, roomID, senderID uuid.UUID, content string) (*domain.Message, error) {
	contentVO, err := domain.NewMessageContent(content)
	if err != nil {
		return nil, err
	}

	var msg *domain.Message
	err = inTx(ctx, uc.uow, func(tx repository.Tx) error {
		room, err := tx.Rooms().GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		if !room.IsMember(senderID) {
			return domain.ErrUserNotInRoom
		}

		m, err := domain.NewTextMessage(roomID, senderID, contentVO)
		if err != nil {
			return err
		}
		if err := tx.Messages().Add(ctx, m); err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// CreateSystemMessage stores a sender-less notice, emitted as a side effect
// of membership changes (join/leave).
type CreateSystemMessage struct {
	uow repository.UnitOfWork
}

func NewCreateSystemMessage(uow repository.UnitOfWork) *CreateSystemMessage {
	return &CreateSystemMessage{uow: uow}
}

func (uc *CreateSystemMessage) Execute(ctx context.Context, roomID uuid.UUID, content string) (*domain.Message, error) {
	contentVO, err := domain.NewMessageContent(content)
	if err != nil {
		return nil, err
	}

	var msg *domain.Message
	err = inTx(ctx, uc.uow, func(tx repository.Tx) error {
		m, err := domain.NewSystemMessage(roomID, contentVO)
		if err != nil {
			return err
		}
		if err := tx.Messages().Add(ctx, m); err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// GetRoomHistory pages through a room's history, newest first.
type GetRoomHistory struct {
	uow repository.UnitOfWork
}

func NewGetRoomHistory(uow repository.UnitOfWork) *GetRoomHistory {
	return &GetRoomHistory{uow: uow}
}

func (uc *GetRoomHistory) Execute(ctx context.Context, roomID, userID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	var messages []*domain.Message
	err := inTx(ctx, uc.uow, func(tx repository.Tx) error {
		room, err := tx.Rooms().GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		if !room.IsMember(userID) {
			return domain.ErrUserNotInRoom
		}

		messages, err = tx.Messages().GetRoomHistory(ctx, roomID, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
