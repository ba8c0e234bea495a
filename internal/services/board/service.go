package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvannatta/kanva/internal/database"
	"github.com/rvannatta/kanva/internal/models"
)

// Service defines all board-related business operations
type Service interface {
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Name   string
	Prefix string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new board service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetAllBoards retrieves all boards ordered by creation
func (s *service) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.GetAllBoards(ctx)
}

// GetBoardByID retrieves a specific board
func (s *service) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetBoardByID(ctx, id)
}

// GetColumnsByBoard retrieves a board's columns in position order
func (s *service) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetColumnsByBoard(ctx, boardID)
}

// CreateBoard creates a board with its counter and default columns
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	if err := validateCreateBoard(req); err != nil {
		return nil, err
	}

	board, err := s.repo.CreateBoard(ctx, req.Name, strings.ToUpper(req.Prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

func validateCreateBoard(req CreateBoardRequest) error {
	if req.Name == "" {
		return ErrEmptyName
	}
	if len(req.Name) > 100 {
		return ErrNameTooLong
	}
	if req.Prefix == "" {
		return ErrEmptyPrefix
	}
	if len(req.Prefix) > 5 {
		return ErrPrefixTooLong
	}
	return nil
}
