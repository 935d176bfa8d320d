package contracts

import "context"

// Registry tracks the chat connections held by this node.
type Registry interface {
	// Register adds a client to the local node memory.
	Register(c Client)
	// Unregister removes the client.
	Unregister(c Client)
	// SendTo delivers data to every connection of userID.
	SendTo(ctx context.Context, userID string, data []byte)
	// Count returns the number of live connections.
	Count() int
	// CloseAll closes every connection, used on shutdown.
	CloseAll()
}

// Client represents the minimal interface required for the Registry to
// communicate with an individual WebSocket connection.
type Client interface {
	ID() string
	UserID() string
	Send(ctx context.Context, data []byte) error
	Close()
}
