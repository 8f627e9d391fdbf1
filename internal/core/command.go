package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinPlace subscribes the client to a place's room.
	CommandJoinPlace CommandKind = iota
	// CommandLeavePlace unsubscribes the client from a place's room.
	CommandLeavePlace
	// CommandSendComment persists a comment and fans it out to the room.
	CommandSendComment
)

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	Place   string
	User    string
	Message string
}
