package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roams-app/roams-server/internal/proto"
	"github.com/roams-app/roams-server/internal/store"
)

// CommentHandlers provides HTTP handlers for comment history.
type CommentHandlers struct {
	store store.CommentStore
	log   *zerolog.Logger
}

// NewCommentHandlers creates a new comment handlers instance.
func NewCommentHandlers(st store.CommentStore, logger *zerolog.Logger) *CommentHandlers {
	return &CommentHandlers{
		store: st,
		log:   logger,
	}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListComments returns the full comment history for a place, most recent
// first. Idempotent; safe to call repeatedly.
// GET /api/comments/:place
func (h *CommentHandlers) ListComments(c *gin.Context) {
	place := c.Param("place")

	comments, err := h.store.ListCommentsByPlace(c.Request.Context(), place)
	if err != nil {
		h.log.Error().Err(err).Str("place", place).Msg("failed to list comments")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]proto.CommentPayload, 0, len(comments))
	for _, comment := range comments {
		response = append(response, proto.CommentPayloadFrom(comment))
	}

	h.log.Debug().Str("place", place).Int("comment_count", len(comments)).Msg("comments listed")
	c.JSON(http.StatusOK, response)
}
