// Package repository defines the persistence contracts consumed by the use
// cases. Implementations live in internal/storage; tests substitute mocks.
package repository

import (
	"context"

	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
)

// UserRepository persists user accounts. Lookups return (nil, nil) when no
// matching record exists.
type UserRepository interface {
	Add(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email domain.Email) (bool, error)
}

// RoomRepository persists rooms and their member sets.
type RoomRepository interface {
	Add(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	// ExistsPrivateRoom reports whether a PRIVATE room exists whose member
	// set is exactly {a, b}, in either order.
	ExistsPrivateRoom(ctx context.Context, a, b uuid.UUID) (bool, error)
	AddMember(ctx context.Context, roomID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error
}

// MessageRepository persists room history.
type MessageRepository interface {
	Add(ctx context.Context, msg *domain.Message) error
	// GetRoomHistory returns messages ordered newest-first.
	GetRoomHistory(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*domain.Message, error)
}

// Tx is one transactional unit. Repositories obtained from a Tx operate
// inside it; Commit or Rollback ends it.
type Tx interface {
	Users() UserRepository
	Rooms() RoomRepository
	Messages() MessageRepository
	Commit() error
	Rollback() error
}

// UnitOfWork opens transactional units. One use case execution maps to
// exactly one Tx.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}
