package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

type ErrorResponse struct {
	ErrorKey     string `json:"errorKey"`
	ErrorMessage string `json:"errorMessage"`
}

type errorMapping struct {
	target  error
	status  int
	key     string
	message string
}

// Order matters: the first matching target wins.
var errorMappings = []errorMapping{
	{errBadRequest, http.StatusBadRequest, "error.badRequest", ""},
	{domain.ErrInvalidUser, http.StatusBadRequest, "error.badRequest", ""},
	{core.ErrInvalidLink, http.StatusBadRequest, "error.badRequest", ""},
	{core.ErrRoomNotFound, http.StatusNotFound, "error.roomNotFound", "Room Not Found, is the ID Correct?"},
	{core.ErrConversationNotFound, http.StatusNotFound, "error.conversationNotFound", "Conversation Not Found, is it still open?"},
	{core.ErrConflict, http.StatusConflict, "error.conflict", "The room changed while updating it, try again."},
	{core.ErrRoomExists, http.StatusConflict, "error.roomExists", "A room with this ID already exists."},
	{core.ErrStoreTimeout, http.StatusInternalServerError, "error.databaseTimeout", "The database took too long to answer, try again later..."},
	{core.ErrInvariantViolation, http.StatusInternalServerError, "error.invariantViolation", "The room is in an inconsistent state."},
}

var fallbackMapping = errorMapping{
	status:  http.StatusInternalServerError,
	key:     "error.databaseConnection",
	message: "There was an issue connecting to the database, try again later...",
}

// toErrorResponse maps err to exactly one status and body. Empty messages
// echo the error, which only happens for client mistakes.
func toErrorResponse(err error) (int, ErrorResponse) {
	m := fallbackMapping
	for _, candidate := range errorMappings {
		if errors.Is(err, candidate.target) {
			m = candidate
			break
		}
	}
	msg := m.message
	if msg == "" {
		msg = err.Error()
	}
	return m.status, ErrorResponse{ErrorKey: m.key, ErrorMessage: msg}
}

func writeError(c *gin.Context, err error) {
	status, body := toErrorResponse(err)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("module", "adapters.http").Str("sid", c.GetString("client_token")).
		Str("path", c.FullPath()).Int("status", status).Msg(body.ErrorKey)
	c.AbortWithStatusJSON(status, body)
}
