package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTaskCreated EventType = "task_created"
	EventTaskLinked  EventType = "task_linked"
	EventTaskMoved   EventType = "task_moved"
)

// Event represents a change notification published after a successful write.
type Event struct {
	Type       EventType
	BoardID    int       // Which board was modified (target board for moves)
	TaskID     int       // The task that changed
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
