package core

import (
	"context"

	"github.com/roams-app/roams-server/internal/store"
	"github.com/rs/zerolog"
)

// Hub owns room membership and fans persisted comments out to rooms.
//
// All membership changes and deliveries go through the Run loop, so within
// one place comments are delivered in the order their persists completed.
// Delivery is at-most-once: a client that disconnects between persist and
// fan-out simply misses the live update and sees the comment on its next
// history fetch.
type Hub struct {
	store store.CommentStore
	log   *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	join       chan membership
	leave      chan membership
	deliver    chan delivery

	done chan struct{}
}

type membership struct {
	client *Client
	place  string
}

type delivery struct {
	place   string
	comment *store.Comment
}

// NewHub constructs a hub backed by the given comment store.
func NewHub(st store.CommentStore, logger *zerolog.Logger) *Hub {
	return &Hub{
		store:      st,
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan membership),
		leave:      make(chan membership),
		deliver:    make(chan delivery),
		done:       make(chan struct{}),
	}
}

// Run processes hub requests until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	clients := make(map[*Client]struct{})
	rooms := make(map[string]*Room)

	for {
		select {
		case client := <-h.register:
			clients[client] = struct{}{}

		case client := <-h.unregister:
			if _, ok := clients[client]; !ok {
				continue
			}
			for place := range client.places {
				h.removeFromRoom(rooms, client, place)
			}
			delete(clients, client)
			close(client.Events)

		case m := <-h.join:
			if _, ok := clients[m.client]; !ok {
				continue
			}
			room, ok := rooms[m.place]
			if !ok {
				room = NewRoom(m.place)
				rooms[m.place] = room
			}
			// Joining an already-joined place is a no-op.
			if room.AddClient(m.client) {
				m.client.places[m.place] = struct{}{}
			}

		case m := <-h.leave:
			if _, ok := clients[m.client]; !ok {
				continue
			}
			h.removeFromRoom(rooms, m.client, m.place)

		case d := <-h.deliver:
			if room, ok := rooms[d.place]; ok {
				room.Broadcast(d.comment)
			}

		case <-ctx.Done():
			for client := range clients {
				close(client.Events)
			}
			return
		}
	}
}

func (h *Hub) removeFromRoom(rooms map[string]*Room, client *Client, place string) {
	room, ok := rooms[place]
	if !ok {
		return
	}
	room.RemoveClient(client)
	delete(client.places, place)
	if room.Empty() {
		delete(rooms, place)
	}
}

// RegisterClient adds a client to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a client from the hub and from every room it
// belongs to, then closes its event channel.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Join subscribes a client to a place's room. Idempotent.
func (h *Hub) Join(c *Client, place string) {
	select {
	case h.join <- membership{client: c, place: place}:
	case <-h.done:
	}
}

// Leave unsubscribes a client from a place's room. Leaving a place never
// joined is a no-op.
func (h *Hub) Leave(c *Client, place string) {
	select {
	case h.leave <- membership{client: c, place: place}:
	case <-h.done:
	}
}

// PostComment persists a comment and fans it out to every client currently
// in the place's room, the sender included.
//
// The persist runs on the caller's goroutine, so a slow append stalls only
// that request. A failed append is never broadcast. The hub does no place
// normalization; differently-cased places are different rooms.
func (h *Hub) PostComment(ctx context.Context, place, user, message string) (*store.Comment, error) {
	if place == "" || user == "" || message == "" {
		return nil, ErrBadRequest
	}

	comment, err := h.store.AppendComment(ctx, place, user, message)
	if err != nil {
		h.log.Error().Err(err).Str("place", place).Msg("failed to persist comment")
		return nil, err
	}

	select {
	case h.deliver <- delivery{place: place, comment: comment}:
	case <-h.done:
	}

	return comment, nil
}
