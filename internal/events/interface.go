package events

import "context"

// Publisher defines the interface for sending change events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type Publisher interface {
	// Connect establishes a connection to the listener socket
	Connect(ctx context.Context) error

	// SendEvent sends an event to the listener
	SendEvent(event Event) error

	// Close closes the connection
	Close() error
}

// Compile-time verification that *Client implements Publisher
var _ Publisher = (*Client)(nil)
