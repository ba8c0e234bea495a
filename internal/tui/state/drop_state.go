package state

import "time"

// DropState tracks which board tab is hovered during a card drag and decides
// when that tab becomes ready to accept a drop.
//
// Hover is debounced: leaving a tab schedules a clear instead of clearing
// immediately, so skimming the cursor across a tab edge does not flicker the
// highlight. Readiness is never stored; it is derived from the hover start
// time on every query, so there is no readiness flag to forget to reset.
//
// Invariant: hoverStartedAt is set iff hoveredBoardID is set.
type DropState struct {
	// hoveredBoardID is the tab currently hovered, 0 when none
	hoveredBoardID int

	// hoverStartedAt is when the current hover began
	hoverStartedAt time.Time

	// clearSeq numbers scheduled hover clears. A clear only applies if it
	// still carries the latest sequence; re-entering the tab before the
	// debounce elapses bumps the sequence and strands the old clear.
	clearSeq int

	// dwell is how long a tab must stay hovered before it accepts a drop
	dwell time.Duration

	// debounce is how long a hover lingers after the cursor leaves the tab
	debounce time.Duration
}

// NewDropState creates a DropState with the given timing thresholds.
func NewDropState(dwell, debounce time.Duration) *DropState {
	return &DropState{dwell: dwell, debounce: debounce}
}

// HoverStart records that the cursor entered a board tab. Re-entering the
// already-hovered board keeps the original start time, so an accumulated
// dwell is not lost to cursor jitter; it still cancels any pending clear.
func (s *DropState) HoverStart(boardID int, now time.Time) {
	s.clearSeq++
	if boardID == s.hoveredBoardID {
		return
	}
	s.hoveredBoardID = boardID
	s.hoverStartedAt = now
}

// HoverEnd records that the cursor left a board tab. It returns the sequence
// the caller must attach to the debounced clear message, and whether a clear
// should be scheduled at all: an end for a board that is not the currently
// hovered one is a leftover from an earlier hover and is ignored.
func (s *DropState) HoverEnd(boardID int) (seq int, ok bool) {
	if boardID != s.hoveredBoardID || s.hoveredBoardID == 0 {
		return 0, false
	}
	s.clearSeq++
	return s.clearSeq, true
}

// CompleteClear applies a debounced clear scheduled by HoverEnd. It reports
// whether the clear applied; a stale sequence means the hover was renewed in
// the meantime and the highlight stays.
func (s *DropState) CompleteClear(boardID, seq int) bool {
	if boardID != s.hoveredBoardID || seq != s.clearSeq {
		return false
	}
	s.hoveredBoardID = 0
	s.hoverStartedAt = time.Time{}
	return true
}

// IsDropReady reports whether the given board has been hovered long enough
// to accept a drop. The answer is computed from the clock on every call.
func (s *DropState) IsDropReady(boardID int, now time.Time) bool {
	if boardID != s.hoveredBoardID || s.hoveredBoardID == 0 {
		return false
	}
	return now.Sub(s.hoverStartedAt) >= s.dwell
}

// HoveredBoard returns the currently hovered board, 0 when none.
func (s *DropState) HoveredBoard() int {
	return s.hoveredBoardID
}

// Debounce returns the configured hover-clear delay, for scheduling the
// clear message.
func (s *DropState) Debounce() time.Duration {
	return s.debounce
}

// Dwell returns the configured drop-readiness threshold, for scheduling the
// readiness re-render tick.
func (s *DropState) Dwell() time.Duration {
	return s.dwell
}

// Reset drops all hover tracking, stranding any scheduled clears. Called
// when the drag ends for any reason.
func (s *DropState) Reset() {
	s.clearSeq++
	s.hoveredBoardID = 0
	s.hoverStartedAt = time.Time{}
}
