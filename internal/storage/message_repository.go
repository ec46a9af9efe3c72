package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomchat/backend/internal/domain"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Add(ctx context.Context, msg *domain.Message) error {
	model := MessageModel{
		ID:          msg.ID(),
		RoomID:      msg.RoomID(),
		Content:     msg.Content().String(),
		MessageType: string(msg.Type()),
		CreatedAt:   msg.CreatedAt(),
	}
	if senderID, ok := msg.SenderID(); ok {
		model.SenderID = &senderID
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetRoomHistory pages newest-first by creation time.
func (r *MessageRepo) GetRoomHistory(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	var rows []MessageModel
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load room history: %w", err)
	}

	messages := make([]*domain.Message, 0, len(rows))
	for i := range rows {
		msg, err := restoreMessage(&rows[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func restoreMessage(model *MessageModel) (*domain.Message, error) {
	content, err := domain.NewMessageContent(model.Content)
	if err != nil {
		return nil, fmt.Errorf("corrupt message row %s: %w", model.ID, err)
	}
	msg, err := domain.RestoreMessage(model.ID, model.RoomID, model.SenderID, content, domain.MessageType(model.MessageType), model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt message row %s: %w", model.ID, err)
	}
	return msg, nil
}
