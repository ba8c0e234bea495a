package state

import (
	"testing"

	"github.com/google/uuid"

	"github.com/rvannatta/kanva/internal/models"
)

func TestLinkStart_RequiresIdleAndSource(t *testing.T) {
	s := NewLinkState()

	if s.Start(nil, 0, 0) {
		t.Error("Start(nil) returned true, want false")
	}
	if s.Mode() != LinkIdle {
		t.Errorf("mode after Start(nil) = %v, want LinkIdle", s.Mode())
	}

	task := &models.Task{ID: 1, BoardID: 1}
	if !s.Start(task, 4, 2) {
		t.Fatal("Start returned false on idle state")
	}
	if s.Mode() != LinkDragging {
		t.Errorf("mode = %v, want LinkDragging", s.Mode())
	}
	if x, y := s.Cursor(); x != 4 || y != 2 {
		t.Errorf("cursor = (%d,%d), want origin (4,2)", x, y)
	}

	// A second press during an active gesture is ignored.
	other := &models.Task{ID: 2, BoardID: 1}
	firstGen := s.Generation()
	if s.Start(other, 9, 9) {
		t.Error("Start during active gesture returned true, want false")
	}
	if s.Source().ID != 1 {
		t.Errorf("source changed to %d, want 1", s.Source().ID)
	}
	if s.Generation() != firstGen {
		t.Error("generation changed by ignored Start")
	}
}

func TestLinkUpdateCursor_OnlyWhileDragging(t *testing.T) {
	s := NewLinkState()

	s.UpdateCursor(7, 7)
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor moved while idle: (%d,%d)", x, y)
	}

	s.Start(&models.Task{ID: 1}, 0, 0)
	s.UpdateCursor(7, 7)
	if x, y := s.Cursor(); x != 7 || y != 7 {
		t.Errorf("cursor = (%d,%d), want (7,7)", x, y)
	}

	s.BeginResolve()
	s.UpdateCursor(1, 1)
	if x, y := s.Cursor(); x != 7 || y != 7 {
		t.Errorf("cursor moved while resolving: (%d,%d)", x, y)
	}
}

func TestLinkSettle_DropsStaleGeneration(t *testing.T) {
	s := NewLinkState()
	s.Start(&models.Task{ID: 1}, 0, 0)
	gen := s.BeginResolve()
	if gen == uuid.Nil {
		t.Fatal("BeginResolve returned Nil generation")
	}

	// Completion from a gesture that no longer exists must be dropped.
	if s.Settle(uuid.New()) {
		t.Error("Settle accepted a foreign generation")
	}
	if s.Mode() != LinkResolving {
		t.Errorf("mode after stale settle = %v, want LinkResolving", s.Mode())
	}

	if !s.Settle(gen) {
		t.Error("Settle rejected the live generation")
	}
	if s.Mode() != LinkIdle {
		t.Errorf("mode after settle = %v, want LinkIdle", s.Mode())
	}
	if s.Source() != nil {
		t.Error("source not cleared after settle")
	}
}

// TestLinkCancel_FromEveryActivePhase verifies the gesture always lands back
// in idle, whichever phase it is abandoned from.
func TestLinkCancel_FromEveryActivePhase(t *testing.T) {
	task := &models.Task{ID: 1}

	s := NewLinkState()
	s.Cancel() // idle cancel is a no-op
	if s.Mode() != LinkIdle {
		t.Errorf("mode after idle Cancel = %v, want LinkIdle", s.Mode())
	}

	s.Start(task, 0, 0)
	s.Cancel()
	if s.Mode() != LinkIdle || s.Source() != nil {
		t.Error("Cancel from dragging did not fully reset")
	}

	s.Start(task, 0, 0)
	gen := s.BeginResolve()
	s.Cancel()
	if s.Mode() != LinkIdle {
		t.Errorf("mode after Cancel from resolving = %v, want LinkIdle", s.Mode())
	}

	// The abandoned call's completion is stale after the cancel.
	if s.Settle(gen) {
		t.Error("Settle accepted a generation from a cancelled gesture")
	}
}

func TestLinkStart_FreshGenerationPerGesture(t *testing.T) {
	s := NewLinkState()
	task := &models.Task{ID: 1}

	s.Start(task, 0, 0)
	first := s.Generation()
	s.Cancel()

	s.Start(task, 0, 0)
	if s.Generation() == first {
		t.Error("second gesture reused the first gesture's generation")
	}
}
