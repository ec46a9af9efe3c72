package eventbus

import (
	"time"

	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
)

// NewMessageEvent wraps a stored TEXT message for fan-out.
func NewMessageEvent(channel string, msg *domain.Message) Event {
	payload := map[string]any{
		"id":         msg.ID().String(),
		"room_id":    msg.RoomID().String(),
		"content":    msg.Content().String(),
		"created_at": msg.CreatedAt().Format(time.RFC3339Nano),
	}
	if senderID, ok := msg.SenderID(); ok {
		payload["sender_id"] = senderID.String()
	}
	return Event{
		Channel: channel,
		Message: Message{Type: TypeNewMessage, Payload: payload},
	}
}

// SystemMessageEvent wraps a stored SYSTEM message for fan-out.
func SystemMessageEvent(channel string, msg *domain.Message) Event {
	return Event{
		Channel: channel,
		Message: Message{
			Type: TypeSystemMessage,
			Payload: map[string]any{
				"id":         msg.ID().String(),
				"room_id":    msg.RoomID().String(),
				"content":    msg.Content().String(),
				"created_at": msg.CreatedAt().Format(time.RFC3339Nano),
			},
		},
	}
}

// TypingEvent is ephemeral: nothing is persisted, and the dispatcher
// excludes the originating user on delivery.
func TypingEvent(channel string, roomID, userID uuid.UUID) Event {
	return Event{
		Channel: channel,
		Message: Message{
			Type: TypeTyping,
			Payload: map[string]any{
				"room_id": roomID.String(),
				"user_id": userID.String(),
			},
		},
	}
}
