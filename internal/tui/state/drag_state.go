package state

import (
	"github.com/google/uuid"

	"github.com/rvannatta/kanva/internal/models"
)

// DragMode represents the current phase of a card drag.
type DragMode int

const (
	// DragIdle means no card is being dragged
	DragIdle DragMode = iota
	// DragActive means a card is being dragged toward a board tab
	DragActive
	// DragResolving means the card was released and the move call is in flight
	DragResolving
)

// DragState manages the card-body drag used to move a task onto another
// board's tab. It is a separate gesture from the link-handle drag: the two
// never run at the same time because both start from a mouse press that the
// update loop routes to exactly one of them.
type DragState struct {
	// mode is the current phase of the drag
	mode DragMode

	// task is the card being dragged
	task *models.Task

	// fromBoardID is the board the card started on
	fromBoardID int

	// cursorX, cursorY is the current drag position
	cursorX, cursorY int

	// generation identifies this drag for async move completion messages
	generation uuid.UUID
}

// NewDragState creates a DragState in the idle phase.
func NewDragState() *DragState {
	return &DragState{mode: DragIdle}
}

// Mode returns the current phase of the drag.
func (s *DragState) Mode() DragMode {
	return s.mode
}

// Active reports whether a drag is in progress in any phase.
func (s *DragState) Active() bool {
	return s.mode != DragIdle
}

// Start begins dragging the given card. It reports whether the drag actually
// started: nil tasks are rejected and a second press during an active drag
// is ignored.
func (s *DragState) Start(task *models.Task, x, y int) bool {
	if s.mode != DragIdle || task == nil {
		return false
	}
	s.mode = DragActive
	s.task = task
	s.fromBoardID = task.BoardID
	s.cursorX, s.cursorY = x, y
	s.generation = uuid.New()
	return true
}

// UpdateCursor moves the drag position. No-op outside the active phase.
func (s *DragState) UpdateCursor(x, y int) {
	if s.mode != DragActive {
		return
	}
	s.cursorX, s.cursorY = x, y
}

// BeginResolve transitions into the resolving phase and returns the
// generation for the async move message. Returns uuid.Nil when no drag is
// active.
func (s *DragState) BeginResolve() uuid.UUID {
	if s.mode != DragActive {
		return uuid.Nil
	}
	s.mode = DragResolving
	return s.generation
}

// Settle completes a resolving drag. Stale generations are ignored.
func (s *DragState) Settle(generation uuid.UUID) bool {
	if s.mode != DragResolving || generation != s.generation {
		return false
	}
	s.reset()
	return true
}

// Cancel aborts the drag from any active phase.
func (s *DragState) Cancel() {
	if s.mode == DragIdle {
		return
	}
	s.reset()
}

// Task returns the card being dragged, nil when idle.
func (s *DragState) Task() *models.Task {
	return s.task
}

// FromBoardID returns the board the dragged card started on.
func (s *DragState) FromBoardID() int {
	return s.fromBoardID
}

// Cursor returns the current drag position.
func (s *DragState) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Generation returns the token identifying the current drag.
func (s *DragState) Generation() uuid.UUID {
	return s.generation
}

func (s *DragState) reset() {
	s.mode = DragIdle
	s.task = nil
	s.fromBoardID = 0
	s.cursorX, s.cursorY = 0, 0
	s.generation = uuid.Nil
}
