package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidRelation = errors.New("invalid relation type")

	// Business logic errors
	ErrTaskNotFound      = errors.New("task not found")
	ErrSelfRelation      = errors.New("a task cannot be linked to itself")
	ErrDuplicateRelation = errors.New("relationship already exists")
	ErrCircularRelation  = errors.New("circular dependency detected")
	ErrSameBoard         = errors.New("task is already on the target board")
)
