package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rvannatta/kanva/internal/models"
)

// BoardRepo provides board and column persistence backed by SQLite.
type BoardRepo struct {
	db *sql.DB
}

// GetAllBoards retrieves all boards ordered by creation.
func (r *BoardRepo) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, prefix, created_at FROM boards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Name, &board.Prefix, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

// GetBoardByID retrieves a single board.
func (r *BoardRepo) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, prefix, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name, &board.Prefix, &board.CreatedAt)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// CreateBoard creates a board with its ticket counter and default columns.
func (r *BoardRepo) CreateBoard(ctx context.Context, name, prefix string) (*models.Board, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO boards (name, prefix) VALUES (?, ?)", name, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO board_counters (board_id, next_ticket_number) VALUES (?, 1)", id); err != nil {
		return nil, err
	}

	for i, colName := range []string{"Todo", "In Progress", "Done"} {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO columns (board_id, name, position) VALUES (?, ?, ?)",
			id, colName, i); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetBoardByID(ctx, int(id))
}

// GetColumnsByBoard retrieves all columns for a board ordered by position.
func (r *BoardRepo) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, position FROM columns
		 WHERE board_id = ? ORDER BY position`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.BoardID, &col.Name, &col.Position); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// GetFirstColumn retrieves the leftmost column of a board, the landing
// column for tasks moved in from another board.
func (r *BoardRepo) GetFirstColumn(ctx context.Context, boardID int) (*models.Column, error) {
	col := &models.Column{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name, position FROM columns
		 WHERE board_id = ? ORDER BY position LIMIT 1`, boardID,
	).Scan(&col.ID, &col.BoardID, &col.Name, &col.Position)
	if err != nil {
		return nil, err
	}
	return col, nil
}
