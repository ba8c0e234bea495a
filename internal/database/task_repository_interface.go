package database

import (
	"context"

	"github.com/rvannatta/kanva/internal/models"
)

// TaskReader defines read operations for tasks. All readers return tasks
// with their relationship sets populated.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	GetTasksByBoard(ctx context.Context, boardID int) ([]*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, boardID, columnID int, title, description string) (*models.Task, error)
}

// TaskMover defines the cross-board move operation.
type TaskMover interface {
	// MoveTaskToBoard reassigns a task to the first column of the target
	// board, appended at the end.
	MoveTaskToBoard(ctx context.Context, taskID, targetBoardID int) error
}

// RelationWriter defines write operations for task relationships.
type RelationWriter interface {
	AddRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error
	RemoveRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	TaskMover
	RelationWriter
}
