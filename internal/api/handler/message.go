package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type messageResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  *string   `json:"sender_id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomHistory returns a page of room messages, newest first.
func (h *Handler) RoomHistory(c *gin.Context) {
	roomID, ok := pathRoomID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.uc.RoomHistory.Execute(c.Request.Context(), roomID, currentUserID(c), limit, offset)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		item := messageResponse{
			ID:        msg.ID().String(),
			RoomID:    msg.RoomID().String(),
			Content:   msg.Content().String(),
			Type:      string(msg.Type()),
			CreatedAt: msg.CreatedAt(),
		}
		if senderID, ok := msg.SenderID(); ok {
			s := senderID.String()
			item.SenderID = &s
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"messages": out})
}
