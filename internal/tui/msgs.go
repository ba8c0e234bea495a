package tui

import (
	"github.com/google/uuid"

	"github.com/rvannatta/kanva/internal/models"
)

// dataLoadedMsg carries a fresh snapshot of all boards and tasks.
type dataLoadedMsg struct {
	boards   []*models.Board
	columns  []*models.Column
	tasks    map[int][]*models.Task
	allTasks []*models.Task
	err      error
}

// linkResolvedMsg reports the outcome of an async CreateRelation call.
// generation identifies the gesture the call belongs to; if the gesture is
// gone by the time this arrives, the message is dropped.
type linkResolvedMsg struct {
	generation uuid.UUID
	source     *models.Task
	target     *models.Task
	err        error
}

// moveResolvedMsg reports the outcome of an async MoveTaskToBoard call.
type moveResolvedMsg struct {
	generation uuid.UUID
	task       *models.Task
	boardID    int
	err        error
}

// taskCreatedMsg reports the outcome of an async CreateTask call.
type taskCreatedMsg struct {
	task *models.Task
	err  error
}

// hoverClearMsg is the debounced clear scheduled when a dragged card leaves
// a board tab. seq is checked against the drop state; a renewed hover makes
// this message stale.
type hoverClearMsg struct {
	boardID int
	seq     int
}

// dropReadyTickMsg fires once the dwell threshold for a hovered tab may
// have elapsed, forcing a re-render so the tab can show its ready state.
// Readiness itself is recomputed from the clock, not from this message.
type dropReadyTickMsg struct {
	boardID int
}

// feedbackExpiredMsg clears the notification identified by seq. A newer
// notification carries a newer seq and survives stale expiries.
type feedbackExpiredMsg struct {
	seq int
}
