package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Message is an immutable entry in a room's history. TEXT messages carry a
// sender; SYSTEM messages (join/leave notices) never do.
type Message struct {
	id        uuid.UUID
	roomID    uuid.UUID
	senderID  *uuid.UUID
	content   MessageContent
	msgType   MessageType
	createdAt time.Time
}

// NewMessage validates the sender/type pairing and stamps creation time.
func NewMessage(roomID uuid.UUID, senderID *uuid.UUID, content MessageContent, msgType MessageType) (*Message, error) {
	return RestoreMessage(uuid.New(), roomID, senderID, content, msgType, time.Now().UTC())
}

// NewTextMessage creates a user-authored message.
func NewTextMessage(roomID, senderID uuid.UUID, content MessageContent) (*Message, error) {
	return NewMessage(roomID, &senderID, content, MessageTypeText)
}

// NewSystemMessage creates a sender-less membership-change notice.
func NewSystemMessage(roomID uuid.UUID, content MessageContent) (*Message, error) {
	return NewMessage(roomID, nil, content, MessageTypeSystem)
}

// RestoreMessage rebuilds a message from persisted state.
func RestoreMessage(id, roomID uuid.UUID, senderID *uuid.UUID, content MessageContent, msgType MessageType, createdAt time.Time) (*Message, error) {
	if msgType == MessageTypeSystem && senderID != nil {
		return nil, ErrSystemMessageHasSender
	}
	if msgType == MessageTypeText && senderID == nil {
		return nil, ErrTextMessageNoSender
	}

	var sender *uuid.UUID
	if senderID != nil {
		s := *senderID
		sender = &s
	}

	return &Message{
		id:        id,
		roomID:    roomID,
		senderID:  sender,
		content:   content,
		msgType:   msgType,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uuid.UUID           { return m.id }
func (m *Message) RoomID() uuid.UUID       { return m.roomID }
func (m *Message) Content() MessageContent { return m.content }
func (m *Message) Type() MessageType       { return m.msgType }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }

// SenderID returns the sender and whether one exists (TEXT only).
func (m *Message) SenderID() (uuid.UUID, bool) {
	if m.senderID == nil {
		return uuid.Nil, false
	}
	return *m.senderID, true
}
