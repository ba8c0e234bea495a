package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/models"
)

// TabStates carries the per-board visual state of the tab bar.
type TabStates struct {
	// SelectedIdx is the active board tab (0-indexed)
	SelectedIdx int
	// HoveredBoardID is the board a dragged card hovers over, 0 for none
	HoveredBoardID int
	// ReadyBoardID is the hovered board once its dwell elapsed, 0 for none
	ReadyBoardID int
}

// RenderTabs renders the board tab bar. Each tab shows one of four states:
// plain, active, hovered by a dragged card, or drop-ready. Drop-ready wins
// over plain hover; the active tab keeps its own border so the user never
// loses track of the current board.
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [Notification]
//	│ Tab1 │ │ Tab2 │──────────────────────
func RenderTabs(boards []*models.Board, states TabStates, width int, notificationContent string) string {
	var renderedTabs []string

	for i, board := range boards {
		style := TabStyle
		switch {
		case board.ID == states.ReadyBoardID:
			style = ReadyTabStyle
		case board.ID == states.HoveredBoardID:
			style = HoverTabStyle
		case i == states.SelectedIdx:
			style = ActiveTabStyle
		}
		renderedTabs = append(renderedTabs, style.Render(board.Name))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
