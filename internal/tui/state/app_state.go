package state

import (
	"github.com/rvannatta/kanva/internal/models"
)

// AppState manages the application's domain data: boards, the active board's
// columns, and its tasks grouped by column.
type AppState struct {
	// boards contains all boards, rendered as tabs
	boards []*models.Board

	// selectedBoard is the index of the active board in the boards slice
	selectedBoard int

	// columns contains the active board's columns in position order
	columns []*models.Column

	// tasks maps column IDs to their tasks in position order
	tasks map[int][]*models.Task
}

// NewAppState creates a new AppState with the provided data.
// The tasks map is never left nil.
func NewAppState(boards []*models.Board, selectedBoard int, columns []*models.Column, tasks map[int][]*models.Task) *AppState {
	if tasks == nil {
		tasks = make(map[int][]*models.Task)
	}
	return &AppState{
		boards:        boards,
		selectedBoard: selectedBoard,
		columns:       columns,
		tasks:         tasks,
	}
}

// CurrentBoard returns the active board, nil if the selection is invalid.
func (s *AppState) CurrentBoard() *models.Board {
	if s.selectedBoard < 0 || s.selectedBoard >= len(s.boards) {
		return nil
	}
	return s.boards[s.selectedBoard]
}

// CurrentBoardID returns the active board's ID, 0 if none.
func (s *AppState) CurrentBoardID() int {
	board := s.CurrentBoard()
	if board == nil {
		return 0
	}
	return board.ID
}

// Boards returns the boards slice.
func (s *AppState) Boards() []*models.Board {
	return s.boards
}

// SetBoards replaces the boards slice.
func (s *AppState) SetBoards(boards []*models.Board) {
	s.boards = boards
}

// SelectedBoard returns the index of the active board.
func (s *AppState) SelectedBoard() int {
	return s.selectedBoard
}

// SetSelectedBoard updates the active board index, clamped to the slice.
func (s *AppState) SetSelectedBoard(index int) {
	if index < 0 || index >= len(s.boards) {
		return
	}
	s.selectedBoard = index
}

// Columns returns the active board's columns.
func (s *AppState) Columns() []*models.Column {
	return s.columns
}

// SetColumns replaces the active board's columns.
func (s *AppState) SetColumns(columns []*models.Column) {
	s.columns = columns
}

// Tasks returns the column-to-tasks map of the active board.
func (s *AppState) Tasks() map[int][]*models.Task {
	return s.tasks
}

// SetTasks replaces the tasks map.
func (s *AppState) SetTasks(tasks map[int][]*models.Task) {
	if tasks == nil {
		tasks = make(map[int][]*models.Task)
	}
	s.tasks = tasks
}

// TasksInColumn returns the tasks of one column in position order.
func (s *AppState) TasksInColumn(columnID int) []*models.Task {
	return s.tasks[columnID]
}

// FindTask looks a task up by ID across the active board's columns.
// Returns nil if the task is not loaded.
func (s *AppState) FindTask(taskID int) *models.Task {
	for _, columnTasks := range s.tasks {
		for _, t := range columnTasks {
			if t.ID == taskID {
				return t
			}
		}
	}
	return nil
}

// BoardIndex returns the position of a board ID in the boards slice,
// -1 if unknown.
func (s *AppState) BoardIndex(boardID int) int {
	for i, b := range s.boards {
		if b.ID == boardID {
			return i
		}
	}
	return -1
}
