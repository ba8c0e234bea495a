package components

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/models"
)

// The mouse hit-testing maps screen cells to widgets from these constants
// alone, so the rendered frames must match them cell for cell.

func geometryFixture() (config.Theme, []*models.Task) {
	tasks := []*models.Task{
		{ID: 1, Title: "Write the quarterly report", TicketCode: "KV-1", BoardID: 1, ColumnID: 1},
		{ID: 2, Title: "Review", TicketCode: "KV-2", BoardID: 1, ColumnID: 1,
			ParentIDs: models.NewIDSet(1)},
	}
	return config.DefaultTheme(), tasks
}

func TestRenderTask_MatchesCardGeometry(t *testing.T) {
	theme, tasks := geometryFixture()
	InitStyles(theme)

	for _, task := range tasks {
		for _, selected := range []bool{false, true} {
			card := RenderTask(task, theme, selected, false)
			if got := lipgloss.Height(card); got != TaskCardHeight {
				t.Errorf("%s selected=%v: card height = %d, want %d",
					task.TicketCode, selected, got, TaskCardHeight)
			}
			if got := lipgloss.Width(card); got != TaskCardWidth+2 {
				t.Errorf("%s selected=%v: card width = %d, want %d",
					task.TicketCode, selected, got, TaskCardWidth+2)
			}
		}
	}
}

func TestRenderColumn_MatchesColumnGeometry(t *testing.T) {
	theme, tasks := geometryFixture()
	InitStyles(theme)

	column := &models.Column{ID: 1, BoardID: 1, Name: "Todo", Position: 1}
	const height = 24

	rendered := RenderColumn(column, tasks, theme, false, -1, 0, height)
	if got := lipgloss.Width(rendered); got != ColumnWidth+2 {
		t.Errorf("column width = %d, want %d", got, ColumnWidth+2)
	}
	if got := lipgloss.Height(rendered); got != height {
		t.Errorf("column height = %d, want %d", got, height)
	}

	// Cards stack directly under the header row, one card every
	// TaskCardHeight rows.
	empty := RenderColumn(column, nil, theme, false, -1, 0, height)
	if got := lipgloss.Height(empty); got != height {
		t.Errorf("empty column height = %d, want %d", got, height)
	}
}

func TestRenderTabs_MatchesTabGeometry(t *testing.T) {
	theme, _ := geometryFixture()
	InitStyles(theme)

	boards := []*models.Board{
		{ID: 1, Name: "Alpha", Prefix: "AL"},
		{ID: 2, Name: "Beta", Prefix: "BE"},
	}

	bar := RenderTabs(boards, TabStates{SelectedIdx: 0}, 120, "")
	if got := lipgloss.Height(bar); got != TabBarHeight {
		t.Errorf("tab bar height = %d, want %d", got, TabBarHeight)
	}

	// Every tab state renders name+4 cells wide, so the hit-test offsets
	// accumulate correctly whatever state a tab is in.
	for _, tt := range []struct {
		name  string
		style lipgloss.Style
	}{
		{"plain", TabStyle},
		{"active", ActiveTabStyle},
		{"hover", HoverTabStyle},
		{"ready", ReadyTabStyle},
	} {
		if got := lipgloss.Width(tt.style.Render("Alpha")); got != lipgloss.Width("Alpha")+4 {
			t.Errorf("%s tab width = %d, want %d", tt.name, got, lipgloss.Width("Alpha")+4)
		}
	}
}

func TestRenderTabs_ReadyTabRendersDistinct(t *testing.T) {
	theme, _ := geometryFixture()
	InitStyles(theme)

	if ReadyTabStyle.Render("Beta") == TabStyle.Render("Beta") {
		t.Error("a drop-ready tab renders identically to a plain tab")
	}
	if HoverTabStyle.Render("Beta") == TabStyle.Render("Beta") {
		t.Error("a hovered tab renders identically to a plain tab")
	}
}

func TestRenderTask_HandleOnLastContentCell(t *testing.T) {
	theme, tasks := geometryFixture()
	InitStyles(theme)

	card := RenderTask(tasks[0], theme, false, false)
	lines := splitLines(card)
	if len(lines) != TaskCardHeight {
		t.Fatalf("card has %d lines, want %d", len(lines), TaskCardHeight)
	}

	// Row 1 is the header; its last content cell, one in from the right
	// border, must be the handle glyph the connector anchors to.
	header := []rune(stripANSI(lines[1]))
	if len(header) != TaskCardWidth+2 {
		t.Fatalf("header row has %d cells, want %d", len(header), TaskCardWidth+2)
	}
	if got := string(header[TaskCardWidth]); got != LinkHandle {
		t.Errorf("cell %d of the header = %q, want %q", TaskCardWidth, got, LinkHandle)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// stripANSI removes CSI escape sequences so tests can index screen cells.
func stripANSI(s string) string {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == 0x1b && i+1 < len(runes) && runes[i+1] == '[' {
			i += 2
			for i < len(runes) && (runes[i] < 0x40 || runes[i] > 0x7e) {
				i++
			}
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}
