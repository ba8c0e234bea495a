package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/tui/components"
	"github.com/rvannatta/kanva/internal/tui/state"
)

// columnStride is the full width of one column including its border.
const columnStride = components.ColumnWidth + 2

// Layout maps screen cells to the widgets rendered there. It mirrors the
// fixed geometry the components use, so hit tests stay in lockstep with the
// renderers without the view having to report positions back.
type Layout struct {
	app *state.AppState
}

// NewLayout builds a hit-test layout over the current app state.
func NewLayout(app *state.AppState) *Layout {
	return &Layout{app: app}
}

// tabWidth is the rendered width of one tab: the name plus one cell of
// padding and one border cell on each side.
func tabWidth(name string) int {
	return lipgloss.Width(name) + 4
}

// TabAt returns the board whose tab covers the given cell, nil if none.
func (l *Layout) TabAt(x, y int) *models.Board {
	if y < 0 || y >= components.TabBarHeight {
		return nil
	}
	tabX := 0
	for _, board := range l.app.Boards() {
		w := tabWidth(board.Name)
		if x >= tabX && x < tabX+w {
			return board
		}
		tabX += w
	}
	return nil
}

// TaskAt returns the task card covering the given cell and whether the cell
// is on the card's link handle. Returns nil if the cell is empty space.
func (l *Layout) TaskAt(x, y int) (task *models.Task, onHandle bool) {
	colIdx := x / columnStride
	columns := l.app.Columns()
	if x < 0 || colIdx >= len(columns) {
		return nil, false
	}

	colX := colIdx * columnStride
	tasks := l.app.TasksInColumn(columns[colIdx].ID)

	// Rows inside the column: top border, header, then the cards.
	tasksY0 := components.TabBarHeight + 2
	if y < tasksY0 {
		return nil, false
	}
	taskIdx := (y - tasksY0) / components.TaskCardHeight
	if taskIdx >= len(tasks) {
		return nil, false
	}

	// Card rect: border(1) + padding(1) in from the column edge.
	cardX := colX + 2
	cardY := tasksY0 + taskIdx*components.TaskCardHeight
	if x < cardX || x >= cardX+components.TaskCardWidth+2 {
		return nil, false
	}

	task = tasks[taskIdx]
	handleX, handleY := l.handleCell(cardX, cardY)
	onHandle = y == handleY && x >= handleX-1 && x <= handleX+1
	return task, onHandle
}

// AnchorFor returns the link-handle cell of the given task, where the
// connector line is anchored. ok is false if the task is not on screen.
func (l *Layout) AnchorFor(taskID int) (x, y int, ok bool) {
	for colIdx, column := range l.app.Columns() {
		for taskIdx, t := range l.app.TasksInColumn(column.ID) {
			if t.ID != taskID {
				continue
			}
			cardX := colIdx*columnStride + 2
			cardY := components.TabBarHeight + 2 + taskIdx*components.TaskCardHeight
			hx, hy := l.handleCell(cardX, cardY)
			return hx, hy, true
		}
	}
	return 0, 0, false
}

// handleCell is the screen cell of a card's link handle: the last content
// cell of the card's first content row.
func (l *Layout) handleCell(cardX, cardY int) (x, y int) {
	return cardX + components.TaskCardWidth, cardY + 1
}
