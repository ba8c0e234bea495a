package tui

import (
	"testing"

	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/tui/state"
)

func newTestLayout() *Layout {
	boards := []*models.Board{
		{ID: 1, Name: "Alpha", Prefix: "AL"},
		{ID: 2, Name: "Beta", Prefix: "BE"},
	}
	columns := []*models.Column{
		{ID: 10, BoardID: 1, Name: "Todo", Position: 1},
		{ID: 11, BoardID: 1, Name: "Doing", Position: 2},
	}
	tasks := map[int][]*models.Task{
		10: {
			{ID: 1, Title: "First", TicketCode: "AL-1", BoardID: 1, ColumnID: 10},
			{ID: 2, Title: "Second", TicketCode: "AL-2", BoardID: 1, ColumnID: 10},
		},
		11: {
			{ID: 3, Title: "Third", TicketCode: "AL-3", BoardID: 1, ColumnID: 11},
		},
	}
	return NewLayout(state.NewAppState(boards, 0, columns, tasks))
}

func TestTabAt(t *testing.T) {
	l := newTestLayout()

	alphaW := tabWidth("Alpha")

	tests := []struct {
		name   string
		x, y   int
		wantID int
	}{
		{"first cell of first tab", 0, 1, 1},
		{"last cell of first tab", alphaW - 1, 1, 1},
		{"first cell of second tab", alphaW, 1, 2},
		{"inside second tab", alphaW + 3, 0, 2},
		{"past all tabs", alphaW + tabWidth("Beta") + 5, 1, 0},
		{"below the tab bar", 2, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := l.TabAt(tt.x, tt.y)
			gotID := 0
			if b != nil {
				gotID = b.ID
			}
			if gotID != tt.wantID {
				t.Errorf("TabAt(%d, %d) = board %d, want %d", tt.x, tt.y, gotID, tt.wantID)
			}
		})
	}
}

func TestTaskAt(t *testing.T) {
	l := newTestLayout()

	tests := []struct {
		name       string
		x, y       int
		wantID     int
		wantHandle bool
	}{
		{"first card body", 5, 6, 1, false},
		{"second card body", 5, 11, 2, false},
		{"second column card", columnStride + 5, 6, 3, false},
		{"above the cards", 5, 4, 0, false},
		{"below the last card", 5, 30, 0, false},
		{"gutter between columns", columnStride - 1, 6, 0, false},
		{"column with fewer cards", columnStride + 5, 11, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, onHandle := l.TaskAt(tt.x, tt.y)
			gotID := 0
			if task != nil {
				gotID = task.ID
			}
			if gotID != tt.wantID || onHandle != tt.wantHandle {
				t.Errorf("TaskAt(%d, %d) = task %d, handle %v; want task %d, handle %v",
					tt.x, tt.y, gotID, onHandle, tt.wantID, tt.wantHandle)
			}
		})
	}
}

func TestTaskAt_HandleHitBox(t *testing.T) {
	l := newTestLayout()

	hx, hy, ok := l.AnchorFor(1)
	if !ok {
		t.Fatal("AnchorFor(1) found nothing")
	}

	// The handle accepts a cell of slop either side, on its row only.
	for _, x := range []int{hx - 1, hx, hx + 1} {
		task, onHandle := l.TaskAt(x, hy)
		if task == nil || task.ID != 1 || !onHandle {
			t.Errorf("TaskAt(%d, %d): task=%v handle=%v, want task 1 on handle", x, hy, task, onHandle)
		}
	}
	if _, onHandle := l.TaskAt(hx, hy+1); onHandle {
		t.Errorf("cell below the handle row reported as handle")
	}
}

func TestAnchorFor(t *testing.T) {
	l := newTestLayout()

	x, y, ok := l.AnchorFor(3)
	if !ok {
		t.Fatal("AnchorFor(3) found nothing")
	}
	task, onHandle := l.TaskAt(x, y)
	if task == nil || task.ID != 3 || !onHandle {
		t.Errorf("anchor cell (%d, %d) does not hit task 3's handle", x, y)
	}

	if _, _, ok := l.AnchorFor(999); ok {
		t.Error("AnchorFor(999) reported a position for an unknown task")
	}
}
