package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/rvannatta/kanva/internal/graph"
	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/services/task"
	"github.com/rvannatta/kanva/internal/tui/huhforms"
	"github.com/rvannatta/kanva/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
// All gesture state mutates here, on the single update goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())

	case dataLoadedMsg:
		if msg.err != nil {
			slog.Error("data load failed", "error", msg.err)
			return m, m.showFeedback(state.CategoryError, "failed to load boards")
		}
		m.applyDataLoaded(msg)
		return m, nil

	case linkResolvedMsg:
		return m.handleLinkResolved(msg)

	case moveResolvedMsg:
		return m.handleMoveResolved(msg)

	case taskCreatedMsg:
		if msg.err != nil {
			return m, m.showFeedback(state.CategoryError, "failed to create task")
		}
		return m, tea.Batch(
			m.showFeedback(state.CategorySuccess, fmt.Sprintf("created %s", msg.task.TicketCode)),
			m.reloadCmd(m.appState.SelectedBoard()),
		)

	case hoverClearMsg:
		m.dropState.CompleteClear(msg.boardID, msg.seq)
		return m, nil

	case dropReadyTickMsg:
		// No state change: readiness is derived from the clock. The tick
		// only exists so the view re-renders when the dwell elapses.
		return m, nil

	case feedbackExpiredMsg:
		m.notificationState.Expire(msg.seq)
		return m, nil
	}

	if m.uiState.Mode() == state.TaskFormMode && m.taskForm != nil {
		return m.updateTaskForm(msg)
	}
	return m, nil
}

// ============================================================================
// KEYBOARD
// ============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.TaskFormMode:
		return m.updateTaskForm(msg)
	case state.HelpMode, state.TaskDetailMode:
		return m.handleOverlayKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.config.KeyMappings

	// Escape tears down whatever gesture is active before anything else.
	if key == "esc" {
		return m.handleEscape()
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.ViewTask:
		return m.handleViewTask()
	case km.PrevColumn, "left":
		return m.navigateColumn(-1)
	case km.NextColumn, "right":
		return m.navigateColumn(1)
	case km.PrevTask, "up":
		return m.navigateTask(-1)
	case km.NextTask, "down":
		return m.navigateTask(1)
	case km.PrevBoard:
		return m.switchBoard(-1)
	case km.NextBoard:
		return m.switchBoard(1)
	}
	return m, nil
}

// handleEscape cancels the active gesture. Link cancellation is announced;
// a dropped card drag just snaps back.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	if m.linkState.Active() {
		m.linkState.Cancel()
		return m, m.showFeedback(state.CategoryCancelled, "link cancelled")
	}
	if m.dragState.Active() {
		m.dragState.Cancel()
		m.dropState.Reset()
		return m, nil
	}
	return m, nil
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", " ":
		m.uiState.SetMode(state.NormalMode)
		m.detailTask = nil
		return m, nil
	}
	if m.uiState.Mode() == state.TaskDetailMode {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if len(m.appState.Columns()) == 0 {
		return m, nil
	}
	m.formTitle = ""
	m.formDescription = ""
	m.formConfirm = false
	m.taskForm = huhforms.CreateTaskForm(&m.formTitle, &m.formDescription, &m.formConfirm)
	m.uiState.SetMode(state.TaskFormMode)
	return m, m.taskForm.Init()
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	t := m.currentTask()
	if t == nil {
		return m, nil
	}
	m.detailTask = t
	m.uiState.SetMode(state.TaskDetailMode)
	return m, nil
}

func (m Model) navigateColumn(delta int) (tea.Model, tea.Cmd) {
	columns := m.appState.Columns()
	next := m.uiState.SelectedColumn() + delta
	if next < 0 || next >= len(columns) {
		return m, nil
	}
	m.uiState.SetSelectedColumn(next)
	m.uiState.SetSelectedTask(0)
	return m, nil
}

func (m Model) navigateTask(delta int) (tea.Model, tea.Cmd) {
	tasks := m.currentTasks()
	next := m.uiState.SelectedTask() + delta
	if next < 0 || next >= len(tasks) {
		return m, nil
	}
	m.uiState.SetSelectedTask(next)
	return m, nil
}

func (m Model) switchBoard(delta int) (tea.Model, tea.Cmd) {
	boards := m.appState.Boards()
	next := m.appState.SelectedBoard() + delta
	if next < 0 || next >= len(boards) {
		return m, nil
	}
	m.appState.SetSelectedBoard(next)
	m.uiState.SetSelectedColumn(0)
	m.uiState.SetSelectedTask(0)
	return m, m.reloadCmd(next)
}

// ============================================================================
// MOUSE
// ============================================================================

func (m Model) handleMouseClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft || m.uiState.Mode() != state.NormalMode {
		return m, nil
	}

	// One gesture at a time: while a link or drag is live, or still
	// resolving, a press neither navigates nor starts anything new.
	if m.dragState.Active() || m.linkState.Active() {
		return m, nil
	}

	layout := m.layout()

	if board := layout.TabAt(mouse.X, mouse.Y); board != nil {
		idx := m.appState.BoardIndex(board.ID)
		if idx < 0 || idx == m.appState.SelectedBoard() {
			return m, nil
		}
		m.appState.SetSelectedBoard(idx)
		m.uiState.SetSelectedColumn(0)
		m.uiState.SetSelectedTask(0)
		return m, m.reloadCmd(idx)
	}

	t, onHandle := layout.TaskAt(mouse.X, mouse.Y)
	if t == nil {
		return m, nil
	}

	if onHandle {
		if x, y, ok := layout.AnchorFor(t.ID); ok {
			m.linkState.Start(t, x, y)
		}
		return m, nil
	}

	m.dragState.Start(t, mouse.X, mouse.Y)
	return m, nil
}

func (m Model) handleMouseMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.linkState.Mode() == state.LinkDragging {
		m.linkState.UpdateCursor(mouse.X, mouse.Y)
		return m, nil
	}

	if m.dragState.Mode() != state.DragActive {
		return m, nil
	}
	m.dragState.UpdateCursor(mouse.X, mouse.Y)

	board := m.layout().TabAt(mouse.X, mouse.Y)
	hovered := m.dropState.HoveredBoard()

	// A tab the user may not drop onto behaves like empty space: the
	// permission gate sits in front of all hover tracking.
	if board != nil && m.perm.CanMoveTaskToBoard(m.dragState.Task(), board.ID) {
		fresh := board.ID != hovered
		m.dropState.HoverStart(board.ID, time.Now())
		if fresh {
			return m, m.dropReadyCmd(board.ID)
		}
		return m, nil
	}

	if hovered != 0 {
		if seq, ok := m.dropState.HoverEnd(hovered); ok {
			return m, m.hoverClearCmd(hovered, seq)
		}
	}
	return m, nil
}

func (m Model) handleMouseRelease(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.linkState.Mode() == state.LinkDragging {
		return m.finishLink(mouse)
	}
	if m.dragState.Mode() == state.DragActive {
		return m.finishDrag(mouse)
	}
	return m, nil
}

// finishLink resolves a connector release. Releasing over empty space is a
// cancellation; over a card, the edge is validated locally before any
// persistence call goes out, so invalid gestures never leave the client.
func (m Model) finishLink(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	source := m.linkState.Source()
	target, _ := m.layout().TaskAt(mouse.X, mouse.Y)

	if target == nil {
		m.linkState.Cancel()
		return m, m.showFeedback(state.CategoryCancelled, "link cancelled")
	}

	relType := models.RelationChild
	if mouse.Mod&tea.ModShift != 0 {
		relType = models.RelationRelated
	}

	if target.ID == source.ID {
		m.linkState.Cancel()
		return m, m.showFeedback(state.CategoryError, "cannot link a task to itself")
	}
	if graph.IsDuplicate(source, target.ID, relType) {
		m.linkState.Cancel()
		return m, m.showFeedback(state.CategoryAlreadyExists,
			fmt.Sprintf("%s is already linked to %s", source.TicketCode, target.TicketCode))
	}
	if graph.Build(m.allTasks).WouldCreateCycle(source.ID, target.ID, relType) {
		m.linkState.Cancel()
		return m, m.showFeedback(state.CategoryCircular,
			fmt.Sprintf("linking %s to %s would create a cycle", source.TicketCode, target.TicketCode))
	}

	generation := m.linkState.BeginResolve()
	return m, m.createRelationCmd(generation, source, target, relType)
}

// finishDrag resolves a card release. Only a release over a drop-ready,
// permitted tab triggers the move; anywhere else the card snaps back with
// no call and no feedback.
func (m Model) finishDrag(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	t := m.dragState.Task()
	board := m.layout().TabAt(mouse.X, mouse.Y)

	if board != nil &&
		m.perm.CanMoveTaskToBoard(t, board.ID) &&
		m.dropState.IsDropReady(board.ID, time.Now()) {
		generation := m.dragState.BeginResolve()
		m.dropState.Reset()
		return m, m.moveTaskCmd(generation, t, board.ID)
	}

	m.dragState.Cancel()
	m.dropState.Reset()
	return m, nil
}

// ============================================================================
// ASYNC COMPLETIONS
// ============================================================================

func (m Model) handleLinkResolved(msg linkResolvedMsg) (tea.Model, tea.Cmd) {
	if !m.linkState.Settle(msg.generation) {
		// The gesture this call belonged to was cancelled or replaced.
		return m, nil
	}

	if msg.err != nil {
		return m, m.showFeedback(categoryForLinkError(msg.err),
			fmt.Sprintf("could not link %s to %s", msg.source.TicketCode, msg.target.TicketCode))
	}

	return m, tea.Batch(
		m.showFeedback(state.CategorySuccess,
			fmt.Sprintf("linked %s to %s", msg.source.TicketCode, msg.target.TicketCode)),
		m.reloadCmd(m.appState.SelectedBoard()),
	)
}

// categoryForLinkError maps service rejections to their feedback category.
// The local pre-validation usually catches these first; the mapping covers
// races where another client changed the graph in between.
func categoryForLinkError(err error) state.FeedbackCategory {
	switch {
	case errors.Is(err, task.ErrDuplicateRelation):
		return state.CategoryAlreadyExists
	case errors.Is(err, task.ErrCircularRelation):
		return state.CategoryCircular
	default:
		return state.CategoryError
	}
}

func (m Model) handleMoveResolved(msg moveResolvedMsg) (tea.Model, tea.Cmd) {
	if !m.dragState.Settle(msg.generation) {
		return m, nil
	}

	if msg.err != nil {
		return m, m.showFeedback(state.CategoryError,
			fmt.Sprintf("could not move %s", msg.task.TicketCode))
	}

	return m, tea.Batch(
		m.showFeedback(state.CategorySuccess,
			fmt.Sprintf("moved %s", msg.task.TicketCode)),
		m.reloadCmd(m.appState.SelectedBoard()),
	)
}

// ============================================================================
// ADD-TASK FORM
// ============================================================================

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.taskForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.taskForm = f
	}

	switch m.taskForm.State {
	case huh.StateCompleted:
		m.uiState.SetMode(state.NormalMode)
		m.taskForm = nil
		if !m.formConfirm || m.formTitle == "" {
			return m, nil
		}
		columns := m.appState.Columns()
		if len(columns) == 0 {
			return m, nil
		}
		req := task.CreateTaskRequest{
			Title:       m.formTitle,
			Description: m.formDescription,
			BoardID:     m.appState.CurrentBoardID(),
			ColumnID:    columns[m.uiState.SelectedColumn()].ID,
		}
		return m, m.createTaskCmd(req)
	case huh.StateAborted:
		m.uiState.SetMode(state.NormalMode)
		m.taskForm = nil
		return m, nil
	}

	return m, cmd
}
