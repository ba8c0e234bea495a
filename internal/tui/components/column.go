package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/models"
)

// RenderColumn renders a complete column with its title and tasks.
//
// Layout:
//
//	{Column Name} ({count})
//	{Task 1}
//	{Task 2}
//	...
//
// linkSourceID marks the task a connector is anchored to (0 for none);
// selectedTaskIdx is the selected task in this column (-1 if the selection
// is elsewhere).
func RenderColumn(column *models.Column, tasks []*models.Task, theme config.Theme, selected bool, selectedTaskIdx int, linkSourceID int, height int) string {
	header := fmt.Sprintf("%s (%d)", column.Name, len(tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(tasks) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No tasks")
	} else {
		// Borders take 2 rows; the header and the overflow indicator take a
		// line each inside them.
		availableHeight := height - 4
		maxVisibleTasks := max(availableHeight/TaskCardHeight, 1)
		visible := tasks[:min(maxVisibleTasks, len(tasks))]

		cards := make([]string, 0, len(visible))
		for i, task := range visible {
			isSelected := selected && i == selectedTaskIdx
			cards = append(cards, RenderTask(task, theme, isSelected, task.ID == linkSourceID))
		}
		content += strings.Join(cards, "\n")

		if len(visible) < len(tasks) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Height spans the frame; shorter content is padded out to it.
		style = style.Height(height)
	}

	return style.Render(content)
}
