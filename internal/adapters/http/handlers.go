package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/app/orch"
	"github.com/dkeye/Hallway/internal/domain"
)

type UserPayload struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// MembershipRequest is the body shared by every membership endpoint.
type MembershipRequest struct {
	RoomID           string      `json:"roomId" binding:"required"`
	User             UserPayload `json:"user"`
	ConversationLink *string     `json:"conversationLink"`
}

type CreateRoomRequest struct {
	Title string `json:"title" binding:"max=256"`
}

type RoomHandlers struct {
	Orch *orch.Orchestrator
}

type membershipOp func(ctx context.Context, id domain.RoomID, user domain.User, link string) (domain.Room, error)

func (h *RoomHandlers) GetRoom(c *gin.Context) {
	room, err := h.Orch.GetRoom(c.Request.Context(), domain.RoomID(c.Param("roomId")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, badRequest(err))
		return
	}
	room, err := h.Orch.CreateRoom(c.Request.Context(), req.Title)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandlers) JoinRoom(c *gin.Context) {
	h.mutate(c, false, func(ctx context.Context, id domain.RoomID, u domain.User, _ string) (domain.Room, error) {
		return h.Orch.JoinRoom(ctx, id, u)
	})
}

func (h *RoomHandlers) LeaveRoom(c *gin.Context) {
	h.mutate(c, false, func(ctx context.Context, id domain.RoomID, u domain.User, _ string) (domain.Room, error) {
		return h.Orch.LeaveRoom(ctx, id, u)
	})
}

func (h *RoomHandlers) CreateConversation(c *gin.Context) {
	h.mutate(c, true, h.Orch.CreateConversation)
}

func (h *RoomHandlers) JoinConversation(c *gin.Context) {
	h.mutate(c, true, h.Orch.JoinConversation)
}

func (h *RoomHandlers) LeaveConversation(c *gin.Context) {
	h.mutate(c, false, func(ctx context.Context, id domain.RoomID, u domain.User, _ string) (domain.Room, error) {
		return h.Orch.LeaveConversation(ctx, id, u)
	})
}

func (h *RoomHandlers) mutate(c *gin.Context, needsLink bool, op membershipOp) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest(err))
		return
	}
	var link string
	switch {
	case req.ConversationLink != nil:
		link = *req.ConversationLink
	case needsLink:
		writeError(c, badRequest(errors.New("conversationLink is required")))
		return
	}

	user := resolveUser(c, req.User)
	room, err := op(c.Request.Context(), domain.RoomID(req.RoomID), user, link)
	if err != nil {
		writeError(c, err)
		return
	}
	rememberUser(c, user)
	log.Debug().Str("module", "adapters.http").Str("sid", c.GetString("client_token")).
		Str("room", req.RoomID).Str("path", c.FullPath()).Msg("membership updated")
	c.JSON(http.StatusOK, room)
}
