package core

// Client is one active realtime connection as seen by the core layer.
type Client struct {
	ID     string
	Events chan *Event

	// Places the client has joined. Owned by the hub loop; never touched
	// from other goroutines.
	places map[string]struct{}
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 8),
		places: make(map[string]struct{}),
	}
}
