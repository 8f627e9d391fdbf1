package core

import "github.com/roams-app/roams-server/internal/store"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventNewComment notifies room members about a newly persisted comment.
	EventNewComment EventKind = iota
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Comment *store.Comment
}
