// Package testutil provides shared helpers for tests that need a real
// database. Tests run against an in-memory SQLite instance with the full
// schema applied, so repository behavior matches production.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rvannatta/kanva/internal/database"
	"github.com/rvannatta/kanva/internal/models"
)

// NewTestDB opens an in-memory database with migrations applied.
// The connection is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// NewTestStore opens an in-memory database and wraps it in a Repository.
func NewTestStore(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(NewTestDB(t))
}

// SeedBoard creates a board with default columns and returns it along with
// its columns.
func SeedBoard(t *testing.T, repo *database.Repository, name, prefix string) (*models.Board, []*models.Column) {
	t.Helper()

	ctx := context.Background()
	board, err := repo.CreateBoard(ctx, name, prefix)
	if err != nil {
		t.Fatalf("failed to seed board %q: %v", name, err)
	}
	columns, err := repo.GetColumnsByBoard(ctx, board.ID)
	if err != nil {
		t.Fatalf("failed to load columns for board %q: %v", name, err)
	}
	if len(columns) == 0 {
		t.Fatalf("seeded board %q has no columns", name)
	}
	return board, columns
}

// SeedTask creates a task in the first column of the given board.
func SeedTask(t *testing.T, repo *database.Repository, board *models.Board, title string) *models.Task {
	t.Helper()

	ctx := context.Background()
	column, err := repo.GetFirstColumn(ctx, board.ID)
	if err != nil {
		t.Fatalf("failed to find first column of board %d: %v", board.ID, err)
	}
	task, err := repo.CreateTask(ctx, board.ID, column.ID, title, "")
	if err != nil {
		t.Fatalf("failed to seed task %q: %v", title, err)
	}
	return task
}
