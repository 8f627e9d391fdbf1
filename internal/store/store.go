package store

import (
	"context"
	"time"
)

// Comment is a persisted location-scoped comment.
// Comments are append-only: once written they are never edited or deleted.
type Comment struct {
	ID        int64
	Place     string
	User      string
	Message   string
	Timestamp time.Time
}

// CommentStore handles comment persistence.
type CommentStore interface {
	// AppendComment persists a new comment, assigning its id and timestamp.
	// The returned comment carries the server-assigned identity.
	AppendComment(ctx context.Context, place, user, message string) (*Comment, error)

	// ListCommentsByPlace returns the full comment history for a place,
	// most recent first. No pagination.
	ListCommentsByPlace(ctx context.Context, place string) ([]*Comment, error)

	// Close closes the underlying database connection.
	Close() error
}
