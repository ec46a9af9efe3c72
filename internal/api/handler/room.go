package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/usecase"
)

type createRoomRequest struct {
	Name         string  `json:"name" binding:"required"`
	RoomType     string  `json:"room_type" binding:"required,oneof=public private"`
	SecondUserID *string `json:"second_user_id"`
}

type roomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	RoomType  string    `json:"room_type"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := usecase.CreateRoomParams{
		Name:    req.Name,
		OwnerID: currentUserID(c),
		Type:    domain.RoomType(req.RoomType),
	}
	if req.SecondUserID != nil {
		second, err := uuid.Parse(*req.SecondUserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid second_user_id"})
			return
		}
		params.SecondUserID = &second
	}

	room, err := h.uc.CreateRoom.Execute(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}

	members := make([]string, 0, len(room.Members()))
	for _, m := range room.Members() {
		members = append(members, m.String())
	}

	c.JSON(http.StatusCreated, roomResponse{
		ID:        room.ID().String(),
		Name:      room.Name().String(),
		OwnerID:   room.OwnerID().String(),
		RoomType:  string(room.Type()),
		Members:   members,
		CreatedAt: room.CreatedAt(),
	})
}

func (h *Handler) JoinRoom(c *gin.Context) {
	roomID, ok := pathRoomID(c)
	if !ok {
		return
	}

	if err := h.uc.JoinRoom.Execute(c.Request.Context(), roomID, currentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) LeaveRoom(c *gin.Context) {
	roomID, ok := pathRoomID(c)
	if !ok {
		return
	}

	if err := h.uc.LeaveRoom.Execute(c.Request.Context(), roomID, currentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
