package state

import (
	"github.com/google/uuid"

	"github.com/rvannatta/kanva/internal/models"
)

// LinkMode represents the current phase of a linking gesture.
type LinkMode int

const (
	// LinkIdle means no linking gesture is in progress
	LinkIdle LinkMode = iota
	// LinkDragging means the user is dragging a connector from a link handle
	LinkDragging
	// LinkResolving means a release happened and the persistence call is in flight
	LinkResolving
)

// LinkState manages the task-linking gesture.
// The gesture begins on a card's link handle, tracks the cursor while the
// connector line is drawn, and ends with either a validated persistence call
// or a cancellation. Every path out of the gesture lands back in LinkIdle.
type LinkState struct {
	// mode is the current phase of the gesture
	mode LinkMode

	// source is the task the connector is being dragged from
	source *models.Task

	// originX, originY is the screen cell the connector is anchored to
	originX, originY int

	// cursorX, cursorY is the current connector endpoint
	cursorX, cursorY int

	// generation identifies this gesture. Async completion messages carry
	// the generation they were issued under; a mismatch means the gesture
	// they belong to is gone and the message is dropped.
	generation uuid.UUID
}

// NewLinkState creates a LinkState in the idle phase.
func NewLinkState() *LinkState {
	return &LinkState{mode: LinkIdle}
}

// Mode returns the current phase of the gesture.
func (s *LinkState) Mode() LinkMode {
	return s.mode
}

// Active reports whether a gesture is in progress in any phase.
func (s *LinkState) Active() bool {
	return s.mode != LinkIdle
}

// Start begins a linking gesture from the given task at the given anchor
// cell. It reports whether the gesture actually started: a nil source is
// rejected, and starting while another gesture is active is ignored.
func (s *LinkState) Start(source *models.Task, originX, originY int) bool {
	if s.mode != LinkIdle || source == nil {
		return false
	}
	s.mode = LinkDragging
	s.source = source
	s.originX, s.originY = originX, originY
	s.cursorX, s.cursorY = originX, originY
	s.generation = uuid.New()
	return true
}

// UpdateCursor moves the connector endpoint. Outside the dragging phase the
// call is a no-op, so late motion events cannot corrupt the state.
func (s *LinkState) UpdateCursor(x, y int) {
	if s.mode != LinkDragging {
		return
	}
	s.cursorX, s.cursorY = x, y
}

// BeginResolve transitions the gesture into the resolving phase and returns
// the generation the caller must attach to the async completion message.
// Returns uuid.Nil if no drag is in progress.
func (s *LinkState) BeginResolve() uuid.UUID {
	if s.mode != LinkDragging {
		return uuid.Nil
	}
	s.mode = LinkResolving
	return s.generation
}

// Settle completes a resolving gesture. It reports whether the completion
// was accepted: a generation from an earlier gesture is stale and ignored.
func (s *LinkState) Settle(generation uuid.UUID) bool {
	if s.mode != LinkResolving || generation != s.generation {
		return false
	}
	s.reset()
	return true
}

// Cancel aborts the gesture from any active phase. An in-flight persistence
// call is not interrupted; its completion message carries a generation that
// no longer matches and is dropped.
func (s *LinkState) Cancel() {
	if s.mode == LinkIdle {
		return
	}
	s.reset()
}

// Source returns the task the gesture started from, nil when idle.
func (s *LinkState) Source() *models.Task {
	return s.source
}

// Origin returns the anchor cell of the connector.
func (s *LinkState) Origin() (x, y int) {
	return s.originX, s.originY
}

// Cursor returns the current endpoint of the connector.
func (s *LinkState) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Generation returns the token identifying the current gesture.
func (s *LinkState) Generation() uuid.UUID {
	return s.generation
}

func (s *LinkState) reset() {
	s.mode = LinkIdle
	s.source = nil
	s.originX, s.originY = 0, 0
	s.cursorX, s.cursorY = 0, 0
	s.generation = uuid.Nil
}
