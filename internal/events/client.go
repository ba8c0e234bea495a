package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// ErrNotConnected is returned by SendEvent before Connect succeeds.
var ErrNotConnected = errors.New("event client not connected")

// Client publishes change events over a Unix domain socket so other
// processes watching the same store can refresh their views.
type Client struct {
	socketPath string

	mu      sync.Mutex
	conn    net.Conn
	encoder *json.Encoder
	closed  bool

	lastSequence int64
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Connect establishes a connection to the listener socket.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("event client already closed")
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial event socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	return nil
}

// SendEvent writes a single event to the socket. The sequence number and
// timestamp are filled in here so callers only describe what changed.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.encoder == nil {
		return ErrNotConnected
	}

	c.lastSequence++
	event.SequenceID = c.lastSequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := c.encoder.Encode(event); err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	return nil
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.encoder = nil

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
