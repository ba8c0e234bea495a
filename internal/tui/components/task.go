package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/models"
)

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ KV-12                 ◉ ┃
//	┃ {Task Title}            ┃
//	┃ ↑1 ↓2 ~0                ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// The ◉ glyph on the first line is the link handle; pressing it starts a
// linking drag instead of a card drag. linkSource marks the card a connector
// is currently anchored to.
func RenderTask(task *models.Task, theme config.Theme, selected, linkSource bool) string {
	bg := theme.TaskBackground
	if selected {
		bg = theme.SelectedBg
	}

	header := renderTaskHeader(task, bg)
	title := renderTaskTitle(task, bg)
	relations := renderTaskRelations(task, bg)
	content := header + "\n" + title + "\n" + relations

	style := TaskStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if linkSource {
		style = style.BorderForeground(lipgloss.Color(theme.Connector))
	}

	return style.Render(content)
}

// renderTaskHeader puts the ticket code on the left and the link handle
// flush right, so the handle lands on a predictable cell for hit testing.
func renderTaskHeader(task *models.Task, bg string) string {
	code := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + task.TicketCode)

	handle := HandleStyle.
		Background(lipgloss.Color(bg)).
		Render(LinkHandle)

	// The header fills the content width exactly, putting the handle on the
	// last content cell, where the connector anchors.
	gapWidth := max(TaskCardWidth-lipgloss.Width(code)-lipgloss.Width(handle), 0)
	gap := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Render(strings.Repeat(" ", gapWidth))

	return code + gap + handle
}

func renderTaskTitle(task *models.Task, bg string) string {
	title := task.Title
	if len(title) > taskTitleMaxLength {
		title = title[:taskTitleMaxLength] + "…"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}

// renderTaskRelations shows the relation counts: ↑ parents, ↓ children,
// ~ related.
func renderTaskRelations(task *models.Task, bg string) string {
	if task.ParentIDs.Len() == 0 && task.ChildIDs.Len() == 0 && task.RelatedIDs.Len() == 0 {
		return " " + SubtleStyle.
			Background(lipgloss.Color(bg)).
			Render("no links")
	}

	counts := fmt.Sprintf("↑%d ↓%d ~%d",
		task.ParentIDs.Len(), task.ChildIDs.Len(), task.RelatedIDs.Len())
	return " " + SubtleStyle.
		Italic(false).
		Background(lipgloss.Color(bg)).
		Render(counts)
}
