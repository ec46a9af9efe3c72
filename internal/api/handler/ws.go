package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"roomchat/backend/internal/eventbus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the frontend host is fixed
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Inbound socket frame: {"type": ..., "payload": {...}}.
type inboundEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type roomPayload struct {
	RoomID string `json:"room_id"`
}

type sendMessagePayload struct {
	RoomID  string `json:"room_id"`
	Content string `json:"content"`
}

// ServeWebSocket authenticates via the access token in the query string,
// upgrades the connection, registers it, and runs the read loop until the
// socket closes.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	userID, err := h.tokens.VerifyAccessToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user, err := h.uc.GetUser.Execute(c.Request.Context(), userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if user == nil || !user.IsActive() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not found or inactive"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := newWSClient(conn)
	h.registry.Connect(userID, client)
	go client.writePump()

	h.readLoop(userID, client)
}

// readLoop consumes inbound frames until the connection dies, then runs the
// disconnect sequence: deregister the socket and, when it was the user's
// last one, emit a best-effort leave notice for every room the user was
// locally present in.
func (h *Handler) readLoop(userID uuid.UUID, client *wsClient) {
	conn := client.conn
	defer func() {
		rooms := h.registry.Disconnect(userID, client)
		for _, roomID := range rooms {
			h.emitSystemMessage(roomID, fmt.Sprintf("User %s left the room", userID))
		}
		client.close()
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from user %s: %v", userID, err)
			}
			break
		}

		var event inboundEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			h.sendError(client, "malformed event")
			continue
		}

		switch event.Type {
		case "join_room":
			h.handleJoinRoom(userID, client, event.Payload)
		case "send_message":
			h.handleSendMessage(userID, client, event.Payload)
		case "typing":
			h.handleTyping(userID, client, event.Payload)
		default:
			// advisory only; the connection stays open
			h.sendError(client, "Unknown event type")
		}
	}
}

// handleJoinRoom marks the user as locally present in the room and
// publishes a joined notice.
func (h *Handler) handleJoinRoom(userID uuid.UUID, client *wsClient, raw json.RawMessage) {
	roomID, ok := parseRoomID(raw)
	if !ok {
		h.sendError(client, "room_id is required")
		return
	}

	h.registry.JoinRoom(roomID, userID)
	h.emitSystemMessage(roomID, fmt.Sprintf("User %s joined the room", userID))
}

func (h *Handler) handleSendMessage(userID uuid.UUID, client *wsClient, raw json.RawMessage) {
	var payload sendMessagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "malformed payload")
		return
	}
	roomID, err := uuid.Parse(payload.RoomID)
	if err != nil || payload.Content == "" {
		h.sendError(client, "room_id and content are required")
		return
	}

	msg, err := h.uc.SendMessage.Execute(context.Background(), roomID, userID, payload.Content)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	if err := h.bus.Publish(context.Background(), eventbus.NewMessageEvent(h.channel, msg)); err != nil {
		log.Printf("ERROR: failed to publish message %s: %v", msg.ID(), err)
		h.sendError(client, "failed to deliver message")
	}
}

func (h *Handler) handleTyping(userID uuid.UUID, client *wsClient, raw json.RawMessage) {
	roomID, ok := parseRoomID(raw)
	if !ok {
		h.sendError(client, "room_id is required")
		return
	}

	if err := h.bus.Publish(context.Background(), eventbus.TypingEvent(h.channel, roomID, userID)); err != nil {
		log.Printf("ERROR: failed to publish typing notice: %v", err)
	}
}

// emitSystemMessage stores a sender-less notice and publishes it. Failures
// are logged, not propagated: membership notices are best-effort.
func (h *Handler) emitSystemMessage(roomID uuid.UUID, content string) {
	msg, err := h.uc.SystemMessage.Execute(context.Background(), roomID, content)
	if err != nil {
		log.Printf("ERROR: failed to store system message for room %s: %v", roomID, err)
		return
	}
	if err := h.bus.Publish(context.Background(), eventbus.SystemMessageEvent(h.channel, msg)); err != nil {
		log.Printf("ERROR: failed to publish system message for room %s: %v", roomID, err)
	}
}

func (h *Handler) sendError(client *wsClient, message string) {
	payload, err := json.Marshal(eventbus.Message{
		Type:    "error",
		Payload: map[string]any{"message": message},
	})
	if err != nil {
		return
	}
	if err := client.Send(payload); err != nil {
		log.Printf("ERROR: failed to send error frame: %v", err)
	}
}

func parseRoomID(raw json.RawMessage) (uuid.UUID, bool) {
	var payload roomPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return uuid.Nil, false
	}
	roomID, err := uuid.Parse(payload.RoomID)
	if err != nil {
		return uuid.Nil, false
	}
	return roomID, true
}
