package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rvannatta/kanva/internal/database"
	"github.com/rvannatta/kanva/internal/events"
	"github.com/rvannatta/kanva/internal/graph"
	"github.com/rvannatta/kanva/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	GetTasksByBoard(ctx context.Context, boardID int) ([]*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)

	// Relationships
	CreateRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error
	RemoveRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error

	// Movements
	MoveTaskToBoard(ctx context.Context, taskID, targetBoardID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	BoardID     int
	ColumnID    int
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.Publisher
}

// NewService creates a new task service
func NewService(repo database.DataStore, eventClient events.Publisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetTask retrieves a single task with its relationship sets populated.
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTask(ctx, taskID)
}

// GetTasksByBoard retrieves all tasks on a board.
func (s *service) GetTasksByBoard(ctx context.Context, boardID int) ([]*models.Task, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetTasksByBoard(ctx, boardID)
}

// GetAllTasks retrieves every task across all boards.
func (s *service) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.GetAllTasks(ctx)
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateCreateTask(req); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, req.BoardID, req.ColumnID, req.Title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publishEvent(events.EventTaskCreated, task.BoardID, task.ID)
	return task, nil
}

// CreateRelation links two tasks after validating the edge. Validation order
// matters: self-reference first, then duplicates, then cycles, so the caller
// gets the most specific error. No write happens unless every check passes.
func (s *service) CreateRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error {
	if sourceID <= 0 || targetID <= 0 {
		return ErrInvalidTaskID
	}
	if !relType.IsValid() {
		return ErrInvalidRelation
	}
	if sourceID == targetID {
		return ErrSelfRelation
	}

	// The snapshot spans all boards because parent/child chains may cross
	// board boundaries after a move.
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks for validation: %w", err)
	}

	var source *models.Task
	for _, t := range tasks {
		if t.ID == sourceID {
			source = t
			break
		}
	}
	if source == nil {
		return ErrTaskNotFound
	}

	if graph.IsDuplicate(source, targetID, relType) {
		return ErrDuplicateRelation
	}
	if graph.Build(tasks).WouldCreateCycle(sourceID, targetID, relType) {
		return ErrCircularRelation
	}

	if err := s.repo.AddRelation(ctx, sourceID, targetID, relType); err != nil {
		return fmt.Errorf("failed to add relation: %w", err)
	}

	slog.Info("relation created",
		"source", sourceID, "target", targetID, "type", relType.String())
	s.publishEvent(events.EventTaskLinked, source.BoardID, sourceID)
	return nil
}

// RemoveRelation removes an existing relationship between two tasks.
func (s *service) RemoveRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error {
	if sourceID <= 0 || targetID <= 0 {
		return ErrInvalidTaskID
	}
	if !relType.IsValid() {
		return ErrInvalidRelation
	}

	if err := s.repo.RemoveRelation(ctx, sourceID, targetID, relType); err != nil {
		return fmt.Errorf("failed to remove relation: %w", err)
	}

	s.publishEvent(events.EventTaskLinked, 0, sourceID)
	return nil
}

// MoveTaskToBoard moves a task to the first column of another board.
func (s *service) MoveTaskToBoard(ctx context.Context, taskID, targetBoardID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if targetBoardID <= 0 {
		return ErrInvalidBoardID
	}

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if task.BoardID == targetBoardID {
		return ErrSameBoard
	}

	if err := s.repo.MoveTaskToBoard(ctx, taskID, targetBoardID); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	slog.Info("task moved", "task", taskID, "board", targetBoardID)
	s.publishEvent(events.EventTaskMoved, targetBoardID, taskID)
	return nil
}

func validateCreateTask(req CreateTaskRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > 255 {
		return ErrTitleTooLong
	}
	if req.BoardID <= 0 {
		return ErrInvalidBoardID
	}
	if req.ColumnID <= 0 {
		return ErrInvalidColumnID
	}
	return nil
}

// publishEvent notifies listeners of a change if an event client exists.
// Publishing is best effort; a dead daemon never fails the write that
// already committed.
func (s *service) publishEvent(eventType events.EventType, boardID, taskID int) {
	if s.eventClient == nil {
		return
	}
	event := events.Event{
		Type:    eventType,
		BoardID: boardID,
		TaskID:  taskID,
	}
	if err := events.PublishWithRetry(s.eventClient, event, 3); err != nil {
		slog.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
