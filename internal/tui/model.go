package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/services/board"
	"github.com/rvannatta/kanva/internal/services/task"
	"github.com/rvannatta/kanva/internal/tui/components"
	"github.com/rvannatta/kanva/internal/tui/state"
	"github.com/rvannatta/kanva/internal/user"
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	config   *config.Config
	taskSvc  task.Service
	boardSvc board.Service
	perm     board.MovePermission
	user     *user.User

	appState          *state.AppState
	uiState           *state.UIState
	linkState         *state.LinkState
	dragState         *state.DragState
	dropState         *state.DropState
	notificationState *state.NotificationState

	// allTasks is the cross-board snapshot used for local pre-validation of
	// link gestures; refreshed on every data load
	allTasks []*models.Task

	// add-task form state
	taskForm        *huh.Form
	formTitle       string
	formDescription string
	formConfirm     bool

	// task detail overlay
	detailTask     *models.Task
	detailViewport viewport.Model
}

// InitialModel creates and initializes the TUI model with data loaded
// through the services.
func InitialModel(ctx context.Context, taskSvc task.Service, boardSvc board.Service, perm board.MovePermission, usr *user.User, cfg *config.Config) Model {
	// The package-level component styles carry the theme; rendering before
	// this call would draw everything unstyled and collapse the tab bar and
	// card frames the hit-test geometry counts on.
	components.InitStyles(cfg.Theme)

	m := Model{
		ctx:               ctx,
		config:            cfg,
		taskSvc:           taskSvc,
		boardSvc:          boardSvc,
		perm:              perm,
		user:              usr,
		appState:          state.NewAppState(nil, 0, nil, nil),
		uiState:           state.NewUIState(),
		linkState:         state.NewLinkState(),
		dragState:         state.NewDragState(),
		dropState:         state.NewDropState(cfg.Timings.DropDwell(), cfg.Timings.HoverDebounce()),
		notificationState: state.NewNotificationState(),
		detailViewport:    viewport.New(),
	}

	if msg := m.loadData(0); msg.err != nil {
		slog.Error("initial data load failed", "error", msg.err)
	} else {
		m.applyDataLoaded(msg)
	}

	return m
}

// Init initializes the Bubble Tea application.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// layout returns the hit-test layout for the current app state.
func (m Model) layout() *Layout {
	return NewLayout(m.appState)
}

// loadData reads the full board snapshot through the services. boardIdx
// selects which board's columns and tasks fill the body.
func (m Model) loadData(boardIdx int) dataLoadedMsg {
	boards, err := m.boardSvc.GetAllBoards(m.ctx)
	if err != nil {
		return dataLoadedMsg{err: err}
	}
	if boardIdx < 0 || boardIdx >= len(boards) {
		boardIdx = 0
	}

	var columns []*models.Column
	tasks := make(map[int][]*models.Task)
	if len(boards) > 0 {
		boardID := boards[boardIdx].ID
		columns, err = m.boardSvc.GetColumnsByBoard(m.ctx, boardID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		boardTasks, err := m.taskSvc.GetTasksByBoard(m.ctx, boardID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		for _, t := range boardTasks {
			tasks[t.ColumnID] = append(tasks[t.ColumnID], t)
		}
	}

	allTasks, err := m.taskSvc.GetAllTasks(m.ctx)
	if err != nil {
		return dataLoadedMsg{err: err}
	}

	return dataLoadedMsg{
		boards:   boards,
		columns:  columns,
		tasks:    tasks,
		allTasks: allTasks,
	}
}

// applyDataLoaded installs a fresh snapshot, preserving the board selection
// the snapshot was loaded for.
func (m *Model) applyDataLoaded(msg dataLoadedMsg) {
	selected := m.appState.SelectedBoard()
	if selected >= len(msg.boards) {
		selected = 0
	}
	m.appState = state.NewAppState(msg.boards, selected, msg.columns, msg.tasks)
	m.allTasks = msg.allTasks
	m.clampSelection()
}

// clampSelection keeps the column/task selection within the loaded data.
func (m *Model) clampSelection() {
	columns := m.appState.Columns()
	if len(columns) == 0 {
		m.uiState.SetSelectedColumn(0)
		m.uiState.SetSelectedTask(0)
		return
	}
	if m.uiState.SelectedColumn() >= len(columns) {
		m.uiState.SetSelectedColumn(len(columns) - 1)
	}
	tasks := m.appState.TasksInColumn(columns[m.uiState.SelectedColumn()].ID)
	if m.uiState.SelectedTask() >= len(tasks) {
		m.uiState.SetSelectedTask(max(len(tasks)-1, 0))
	}
}

// currentTasks returns the tasks of the currently selected column.
func (m Model) currentTasks() []*models.Task {
	columns := m.appState.Columns()
	if len(columns) == 0 {
		return nil
	}
	return m.appState.TasksInColumn(columns[m.uiState.SelectedColumn()].ID)
}

// currentTask returns the currently selected task, nil when none.
func (m Model) currentTask() *models.Task {
	tasks := m.currentTasks()
	if len(tasks) == 0 || m.uiState.SelectedTask() >= len(tasks) {
		return nil
	}
	return tasks[m.uiState.SelectedTask()]
}
