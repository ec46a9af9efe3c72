package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomchat/backend/internal/domain"
)

type RoomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

func (r *RoomRepo) Add(ctx context.Context, room *domain.Room) error {
	model := RoomModel{
		ID:        room.ID(),
		Name:      room.Name().String(),
		OwnerID:   room.OwnerID(),
		RoomType:  string(room.Type()),
		CreatedAt: room.CreatedAt(),
	}
	if room.Type() == domain.RoomTypePrivate {
		members := room.Members()
		pair := domain.PairKey(members[0], members[1])
		model.PrivatePair = &pair
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	for _, userID := range room.Members() {
		row := RoomMemberModel{RoomID: room.ID(), UserID: userID}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert room member: %w", err)
		}
	}
	return nil
}

func (r *RoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	db := r.db.WithContext(ctx)

	var model RoomModel
	err := db.Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find room by id: %w", err)
	}

	var members []uuid.UUID
	err = db.Model(&RoomMemberModel{}).
		Where("room_id = ?", id).
		Pluck("user_id", &members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load room members: %w", err)
	}

	name, err := domain.NewRoomName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("corrupt room row %s: %w", model.ID, err)
	}
	room, err := domain.RestoreRoom(model.ID, name, model.OwnerID, domain.RoomType(model.RoomType), members, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt room row %s: %w", model.ID, err)
	}
	return room, nil
}

// ExistsPrivateRoom checks by the order-independent pair key, so it matches
// only a PRIVATE room whose member set is exactly {a, b} and is immune to
// unrelated private rooms sharing one of the two users.
func (r *RoomRepo) ExistsPrivateRoom(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RoomModel{}).
		Where("room_type = ? AND private_pair = ?", string(domain.RoomTypePrivate), domain.PairKey(a, b)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check private room existence: %w", err)
	}
	return count > 0, nil
}

func (r *RoomRepo) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	row := RoomMemberModel{RoomID: roomID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert room member: %w", err)
	}
	return nil
}

func (r *RoomRepo) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&RoomMemberModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete room member: %w", err)
	}
	return nil
}
