package state

import (
	"testing"
	"time"
)

const (
	testDwell    = 800 * time.Millisecond
	testDebounce = 300 * time.Millisecond
)

func TestHoverStart_IdempotentForSameBoard(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	start := time.Now()

	s.HoverStart(1, start)
	// Cursor jitter: repeated enter events for the hovered board must not
	// reset the accumulated dwell.
	s.HoverStart(1, start.Add(500*time.Millisecond))

	if !s.IsDropReady(1, start.Add(testDwell)) {
		t.Error("re-entering the hovered board reset the dwell timer")
	}
}

func TestHoverStart_SwitchingBoardsRestartsDwell(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	start := time.Now()

	s.HoverStart(1, start)
	s.HoverStart(2, start.Add(700*time.Millisecond))

	if s.HoveredBoard() != 2 {
		t.Errorf("HoveredBoard = %d, want 2", s.HoveredBoard())
	}
	// Board 2's dwell starts from its own hover, not board 1's.
	if s.IsDropReady(2, start.Add(testDwell)) {
		t.Error("board 2 ready from board 1's dwell")
	}
	if !s.IsDropReady(2, start.Add(700*time.Millisecond+testDwell)) {
		t.Error("board 2 not ready after its own full dwell")
	}
}

func TestIsDropReady_DwellBoundary(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	start := time.Now()
	s.HoverStart(1, start)

	tests := []struct {
		name string
		at   time.Duration
		want bool
	}{
		{"immediately", 0, false},
		{"just under threshold", testDwell - time.Millisecond, false},
		{"exactly at threshold", testDwell, true},
		{"past threshold", testDwell + time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsDropReady(1, start.Add(tt.at)); got != tt.want {
				t.Errorf("IsDropReady(+%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	if s.IsDropReady(2, start.Add(time.Hour)) {
		t.Error("unhovered board reported ready")
	}
}

func TestHoverEnd_StaleBoardIgnored(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	now := time.Now()

	s.HoverStart(1, now)
	s.HoverStart(2, now)

	// A leftover end event for board 1 arrives while board 2 is hovered.
	if _, ok := s.HoverEnd(1); ok {
		t.Error("HoverEnd for a stale board scheduled a clear")
	}
	if s.HoveredBoard() != 2 {
		t.Errorf("HoveredBoard = %d, want 2", s.HoveredBoard())
	}
}

func TestCompleteClear_RenewedHoverStrandsOldClear(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	now := time.Now()

	s.HoverStart(1, now)
	seq, ok := s.HoverEnd(1)
	if !ok {
		t.Fatal("HoverEnd for the hovered board refused to schedule a clear")
	}

	// The cursor comes back before the debounce elapses.
	s.HoverStart(1, now.Add(100*time.Millisecond))

	if s.CompleteClear(1, seq) {
		t.Error("a clear superseded by a renewed hover still applied")
	}
	if s.HoveredBoard() != 1 {
		t.Errorf("HoveredBoard = %d, want 1 (hover renewed)", s.HoveredBoard())
	}
	// Dwell survives the excursion because the hover was never cleared.
	if !s.IsDropReady(1, now.Add(testDwell)) {
		t.Error("renewed hover lost its original start time")
	}
}

func TestCompleteClear_AppliesWhenCurrent(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	now := time.Now()

	s.HoverStart(1, now)
	seq, _ := s.HoverEnd(1)

	if !s.CompleteClear(1, seq) {
		t.Error("current clear did not apply")
	}
	if s.HoveredBoard() != 0 {
		t.Errorf("HoveredBoard = %d, want 0 after clear", s.HoveredBoard())
	}
	if s.IsDropReady(1, now.Add(time.Hour)) {
		t.Error("cleared board reported ready")
	}
}

func TestReset_StrandsScheduledClears(t *testing.T) {
	s := NewDropState(testDwell, testDebounce)
	now := time.Now()

	s.HoverStart(1, now)
	seq, _ := s.HoverEnd(1)
	s.Reset()

	if s.HoveredBoard() != 0 {
		t.Errorf("HoveredBoard = %d, want 0 after reset", s.HoveredBoard())
	}

	s.HoverStart(1, now)
	if s.CompleteClear(1, seq) {
		t.Error("pre-reset clear applied to a fresh hover")
	}
}
