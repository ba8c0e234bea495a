package database

import (
	"context"

	"github.com/rvannatta/kanva/internal/models"
)

// BoardRepository defines operations over boards.
type BoardRepository interface {
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	CreateBoard(ctx context.Context, name, prefix string) (*models.Board, error)
}

// ColumnRepository defines operations over board columns.
type ColumnRepository interface {
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetFirstColumn(ctx context.Context, boardID int) (*models.Column, error)
}
