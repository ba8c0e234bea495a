package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rvannatta/kanva/internal/tui/components"
	"github.com/rvannatta/kanva/internal/tui/notifications"
	"github.com/rvannatta/kanva/internal/tui/state"
)

// View renders the current state of the application.
// The board is the base layer; the connector line, the drag ghost and modal
// overlays are composited on top with the canvas.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.BackgroundColor = lipgloss.Color(m.config.Theme.TaskBackground)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	if m.linkState.Mode() == state.LinkDragging {
		fromX, fromY := m.linkState.Origin()
		toX, toY := m.linkState.Cursor()
		layers = append(layers, components.RenderConnectorLayers(fromX, fromY, toX, toY)...)
	}

	if m.dragState.Mode() == state.DragActive {
		layers = append(layers, m.dragGhostLayer())
	}

	switch m.uiState.Mode() {
	case state.HelpMode:
		layers = append(layers, m.helpLayer())
	case state.TaskFormMode:
		if layer := m.taskFormLayer(); layer != nil {
			layers = append(layers, layer)
		}
	case state.TaskDetailMode:
		if layer := m.taskDetailLayer(); layer != nil {
			layers = append(layers, layer)
		}
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// viewBoard renders the base layer: tab bar, columns, status bar.
func (m Model) viewBoard() string {
	width := m.uiState.Width()
	height := m.uiState.Height()

	hovered := m.dropState.HoveredBoard()
	ready := 0
	if hovered != 0 && m.dropState.IsDropReady(hovered, time.Now()) {
		ready = hovered
	}

	var notificationContent string
	if n := m.notificationState.Current(); n != nil {
		notificationContent = notifications.RenderInline(*n, m.config.Theme)
	}

	tabBar := components.RenderTabs(m.appState.Boards(), components.TabStates{
		SelectedIdx:    m.appState.SelectedBoard(),
		HoveredBoardID: hovered,
		ReadyBoardID:   ready,
	}, width, notificationContent)

	columnHeight := height - components.TabBarHeight - components.StatusBarHeight
	linkSourceID := 0
	if m.linkState.Active() && m.linkState.Source() != nil {
		linkSourceID = m.linkState.Source().ID
	}

	var renderedColumns []string
	for i, column := range m.appState.Columns() {
		selected := i == m.uiState.SelectedColumn()
		selectedTaskIdx := -1
		if selected {
			selectedTaskIdx = m.uiState.SelectedTask()
		}
		renderedColumns = append(renderedColumns, components.RenderColumn(
			column,
			m.appState.TasksInColumn(column.ID),
			m.config.Theme,
			selected,
			selectedTaskIdx,
			linkSourceID,
			columnHeight,
		))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, renderedColumns...)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:    width,
		Username: m.user.Name,
		Role:     string(m.user.Role),
		Hint:     m.statusHint(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, body, statusBar)
}

// statusHint is the context-sensitive help line for the active gesture.
func (m Model) statusHint() string {
	switch {
	case m.linkState.Mode() == state.LinkDragging:
		return "release on a card to link · shift for related · esc cancels"
	case m.dragState.Mode() == state.DragActive:
		return "hold over a board tab to move · esc cancels"
	}
	return ""
}

// dragGhostLayer renders the floating card label that follows the cursor
// during a card drag.
func (m Model) dragGhostLayer() *lipgloss.Layer {
	t := m.dragState.Task()
	x, y := m.dragState.Cursor()
	ghost := components.GhostStyle.Render(t.TicketCode)

	// Offset so the ghost trails the pointer instead of covering it.
	return lipgloss.NewLayer(ghost).X(max(x+1, 0)).Y(max(y+1, 0))
}

// centeredLayer positions content at the center of the screen.
func (m Model) centeredLayer(content string) *lipgloss.Layer {
	x := max((m.uiState.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.uiState.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

func (m Model) helpLayer() *lipgloss.Layer {
	km := m.config.KeyMappings
	helpText := fmt.Sprintf(`KANVA - Keyboard & Mouse

TASKS
  %s      Add new task
  %s      View task detail
  click   Select task, drag to move across boards
  ◉ drag  Draw a link to another task
  shift   Hold on release for a related link

NAVIGATION
  %s/%s     Previous / next column
  %s/%s     Previous / next task
  %s/%s     Previous / next board

OTHER
  esc     Cancel the active gesture
  %s      Show this help
  %s      Quit

Press any key to close`,
		km.AddTask,
		km.ViewTask,
		km.PrevColumn, km.NextColumn,
		km.PrevTask, km.NextTask,
		km.PrevBoard, km.NextBoard,
		km.ShowHelp,
		km.Quit,
	)
	return m.centeredLayer(components.HelpBoxStyle.Width(50).Render(helpText))
}

func (m Model) taskFormLayer() *lipgloss.Layer {
	if m.taskForm == nil {
		return nil
	}
	formBox := components.FormBoxStyle.
		Width(m.uiState.Width() / 2).
		Render("New Task\n\n" + m.taskForm.View())
	return m.centeredLayer(formBox)
}

func (m Model) taskDetailLayer() *lipgloss.Layer {
	t := m.detailTask
	if t == nil {
		return nil
	}

	boxWidth := m.uiState.Width() * 3 / 4
	boxHeight := m.uiState.Height() * 3 / 4
	contentWidth := boxWidth - 6

	header := components.TitleStyle.Render(fmt.Sprintf("%s  %s", t.TicketCode, t.Title))
	relations := components.SubtleStyle.Render(fmt.Sprintf(
		"parents %d · children %d · related %d",
		t.ParentIDs.Len(), t.ChildIDs.Len(), t.RelatedIDs.Len()))

	description := components.RenderDescription(components.DescriptionProps{
		Description: t.Description,
		Width:       contentWidth,
	})

	// Keep viewport dimensions in sync in case the terminal was resized.
	m.detailViewport.SetWidth(contentWidth)
	m.detailViewport.SetHeight(max(boxHeight-6, 1))
	m.detailViewport.SetContent(description)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		relations,
		"",
		m.detailViewport.View(),
	)

	box := components.DetailBoxStyle.
		Width(boxWidth).
		Height(boxHeight).
		Render(content)
	return m.centeredLayer(box)
}
