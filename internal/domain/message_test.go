package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomchat/backend/internal/domain"
)

func mustContent(t *testing.T, raw string) domain.MessageContent {
	t.Helper()
	content, err := domain.NewMessageContent(raw)
	require.NoError(t, err)
	return content
}

func TestNewMessageContent_Validates(t *testing.T) {
	content, err := domain.NewMessageContent("  hello  ")
	assert.NoError(t, err)
	assert.Equal(t, "hello", content.String())

	_, err = domain.NewMessageContent("   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessageContent)

	_, err = domain.NewMessageContent(strings.Repeat("x", 4001))
	assert.ErrorIs(t, err, domain.ErrMessageContentTooLong)

	_, err = domain.NewMessageContent(strings.Repeat("x", 4000))
	assert.NoError(t, err)
}

// TestNewMessageContent_CountsCharacters verifies the length limit is in
// characters: 4000 two-byte runes are within bounds, 4001 are not.
func TestNewMessageContent_CountsCharacters(t *testing.T) {
	_, err := domain.NewMessageContent(strings.Repeat("я", 4000))
	assert.NoError(t, err)

	_, err = domain.NewMessageContent(strings.Repeat("я", 4001))
	assert.ErrorIs(t, err, domain.ErrMessageContentTooLong)
}

func TestNewTextMessage_HasSender(t *testing.T) {
	roomID := uuid.New()
	sender := uuid.New()

	msg, err := domain.NewTextMessage(roomID, sender, mustContent(t, "hello"))

	require.NoError(t, err)
	assert.Equal(t, domain.MessageTypeText, msg.Type())
	got, ok := msg.SenderID()
	assert.True(t, ok)
	assert.Equal(t, sender, got)
	assert.False(t, msg.CreatedAt().IsZero())
}

func TestNewSystemMessage_HasNoSender(t *testing.T) {
	msg, err := domain.NewSystemMessage(uuid.New(), mustContent(t, "user joined"))

	require.NoError(t, err)
	assert.Equal(t, domain.MessageTypeSystem, msg.Type())
	_, ok := msg.SenderID()
	assert.False(t, ok)
}

// TestNewMessage_SenderTypePairing verifies constructing the forbidden
// combinations fails: TEXT without sender, SYSTEM with sender.
func TestNewMessage_SenderTypePairing(t *testing.T) {
	roomID := uuid.New()
	sender := uuid.New()
	content := mustContent(t, "hello")

	_, err := domain.NewMessage(roomID, nil, content, domain.MessageTypeText)
	assert.ErrorIs(t, err, domain.ErrTextMessageNoSender)

	_, err = domain.NewMessage(roomID, &sender, content, domain.MessageTypeSystem)
	assert.ErrorIs(t, err, domain.ErrSystemMessageHasSender)
}
