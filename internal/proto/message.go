package proto

import (
	"encoding/json"
	"time"

	"github.com/roams-app/roams-server/internal/store"
)

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinPlace   = "join_place"
	InboundTypeLeavePlace  = "leave_place"
	InboundTypeSendComment = "send_comment"

	OutboundTypeNewComment = "new_comment"
	OutboundTypeError      = "error"
)

// JoinPlaceData subscribes the connection to a place's room. Places are
// lower-cased by the client before they reach the server; the server treats
// differently-cased strings as different places.
type JoinPlaceData struct {
	Place string `json:"place"`
}

// SendCommentData is a new comment from the client.
type SendCommentData struct {
	Place   string `json:"place"`
	User    string `json:"user"`
	Message string `json:"message"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// CommentPayload is the broadcast representation of a persisted comment.
type CommentPayload struct {
	ID        int64  `json:"id"`
	Place     string `json:"place"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// CommentPayloadFrom converts a stored comment to its wire form, the
// timestamp serialized as ISO-8601 (RFC 3339).
func CommentPayloadFrom(c *store.Comment) CommentPayload {
	return CommentPayload{
		ID:        c.ID,
		Place:     c.Place,
		User:      c.User,
		Message:   c.Message,
		Timestamp: c.Timestamp.Format(time.RFC3339),
	}
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
