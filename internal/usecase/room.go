package usecase

import (
	"context"

	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/repository"
)

// CreateRoomParams carries the create-room command. SecondUserID is
// required for (and only meaningful to) private rooms.
type CreateRoomParams struct {
	Name         string
	OwnerID      uuid.UUID
	Type         domain.RoomType
	SecondUserID *uuid.UUID
}

// CreateRoom creates a public room with the owner as sole member, or a
// private room with exactly the owner and the second user. At most one
// private room may exist per user pair.
type CreateRoom struct {
	uow repository.UnitOfWork
}

func NewCreateRoom(uow repository.UnitOfWork) *CreateRoom {
	return &CreateRoom{uow: uow}
}

func (uc *CreateRoom) Execute(ctx context.Context, params CreateRoomParams) (*domain.Room, error) {
	name, err := domain.NewRoomName(params.Name)
	if err != nil {
		return nil, err
	}

	var room *domain.Room
	err = inTx(ctx, uc.uow, func(tx repository.Tx) error {
		var members []uuid.UUID
		if params.Type == domain.RoomTypePrivate {
			if params.SecondUserID == nil {
				return ErrSecondUserRequired
			}

			exists, err := tx.Rooms().ExistsPrivateRoom(ctx, params.OwnerID, *params.SecondUserID)
			if err != nil {
				return err
			}
			if exists {
				return ErrRoomAlreadyExists
			}

			members = []uuid.UUID{params.OwnerID, *params.SecondUserID}
		}

		r, err := domain.NewRoom(name, params.OwnerID, params.Type, members)
		if err != nil {
			return err
		}

		if err := tx.Rooms().Add(ctx, r); err != nil {
			return err
		}
		room = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// JoinRoom adds the caller to a public room.
type JoinRoom struct {
	uow repository.UnitOfWork
}

func NewJoinRoom(uow repository.UnitOfWork) *JoinRoom {
	return &JoinRoom{uow: uow}
}

func (uc *JoinRoom) Execute(ctx context.Context, roomID, userID uuid.UUID) error {
	return inTx(ctx, uc.uow, func(tx repository.Tx) error {
		room, err := tx.Rooms().GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}

		// fails with already-in-room or private-room-immutable
		if err := room.AddMember(userID); err != nil {
			return err
		}

		return tx.Rooms().AddMember(ctx, roomID, userID)
	})
}

// LeaveRoom removes the caller from a room. The owner can never leave.
type LeaveRoom struct {
	uow repository.UnitOfWork
}

func NewLeaveRoom(uow repository.UnitOfWork) *LeaveRoom {
	return &LeaveRoom{uow: uow}
}

func (uc *LeaveRoom) Execute(ctx context.Context, roomID, userID uuid.UUID) error {
	return inTx(ctx, uc.uow, func(tx repository.Tx) error {
		room, err := tx.Rooms().GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}

		if err := room.RemoveMember(userID); err != nil {
			return err
		}

		return tx.Rooms().RemoveMember(ctx, roomID, userID)
	})
}
