// Package storage implements the repository contracts on PostgreSQL via
// GORM, plus the transactional unit of work the use cases run in.
package storage

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the persistence shape of a user account.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	IsActive     bool      `gorm:"not null"`
	IsOnline     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// RoomModel is the persistence shape of a room. PrivatePair holds the
// order-independent member-pair key for PRIVATE rooms and is nil for public
// ones; the unique index makes "one private room per pair" a database
// invariant and the existence check a keyed lookup.
type RoomModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	RoomType    string    `gorm:"size:16;not null"`
	PrivatePair *string   `gorm:"size:80;uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (RoomModel) TableName() string { return "rooms" }

// RoomMemberModel is one row per (room, user) membership.
type RoomMemberModel struct {
	RoomID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RoomMemberModel) TableName() string { return "room_members" }

// MessageModel is the persistence shape of a history entry. SenderID is
// null exactly for SYSTEM messages.
type MessageModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoomID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_room_created"`
	SenderID    *uuid.UUID `gorm:"type:uuid"`
	Content     string     `gorm:"type:text;not null"`
	MessageType string     `gorm:"size:16;not null"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_room_created"`
}

func (MessageModel) TableName() string { return "messages" }

// Models lists every persisted model for AutoMigrate at startup.
func Models() []any {
	return []any{
		&UserModel{},
		&RoomModel{},
		&RoomMemberModel{},
		&MessageModel{},
	}
}
