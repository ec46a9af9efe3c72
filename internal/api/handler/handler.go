// Package handler is the HTTP/WebSocket boundary: gin routes for auth and
// rooms, the websocket endpoint, and the mapping from application errors to
// status codes.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roomchat/backend/internal/auth"
	"roomchat/backend/internal/eventbus"
	"roomchat/backend/internal/registry"
	"roomchat/backend/internal/usecase"
)

// UseCases bundles the transactional operations the handlers invoke.
type UseCases struct {
	RegisterUser  *usecase.RegisterUser
	LoginUser     *usecase.LoginUser
	GetUser       *usecase.GetUser
	CreateRoom    *usecase.CreateRoom
	JoinRoom      *usecase.JoinRoom
	LeaveRoom     *usecase.LeaveRoom
	SendMessage   *usecase.SendMessage
	SystemMessage *usecase.CreateSystemMessage
	RoomHistory   *usecase.GetRoomHistory
}

type Handler struct {
	uc       UseCases
	tokens   *auth.TokenService
	registry *registry.Registry
	bus      eventbus.Bus
	channel  string
}

func NewHandler(uc UseCases, tokens *auth.TokenService, reg *registry.Registry, bus eventbus.Bus, channel string) *Handler {
	return &Handler{
		uc:       uc,
		tokens:   tokens,
		registry: reg,
		bus:      bus,
		channel:  channel,
	}
}

// RegisterRoutes wires every endpoint onto the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)

	authed := r.Group("/", h.RequireAuth)
	authed.GET("/users/me", h.Me)
	authed.POST("/rooms", h.CreateRoom)
	authed.POST("/rooms/:id/join", h.JoinRoom)
	authed.POST("/rooms/:id/leave", h.LeaveRoom)
	authed.GET("/rooms/:id/messages", h.RoomHistory)

	r.GET("/ws", h.ServeWebSocket)
}

const ctxUserID = "user_id"

// RequireAuth verifies the bearer access token and stores the caller's id
// in the request context.
func (h *Handler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	userID, err := h.tokens.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ctxUserID).(uuid.UUID)
}

func pathRoomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps application and domain errors to HTTP outcomes without leaking
// internal state.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailAlreadyExists),
		errors.Is(err, usecase.ErrRoomAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInactiveUser):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSecondUserRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case isDomainConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
