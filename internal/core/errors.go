package core

import "errors"

// Error codes for client-visible errors.
const (
	ErrCodeBadRequest = "bad_request"
)

var (
	// ErrBadRequest marks a post with a missing place, user, or message.
	ErrBadRequest = errors.New("bad request")
)
