package board

import "errors"

// Board-related errors
var (
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrEmptyName      = errors.New("board name cannot be empty")
	ErrNameTooLong    = errors.New("board name cannot exceed 100 characters")
	ErrEmptyPrefix    = errors.New("board prefix cannot be empty")
	ErrPrefixTooLong  = errors.New("board prefix cannot exceed 5 characters")
	ErrBoardNotFound  = errors.New("board not found")
)
