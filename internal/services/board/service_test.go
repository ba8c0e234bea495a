package board

import (
	"context"
	"errors"
	"testing"

	"github.com/rvannatta/kanva/internal/testutil"
)

func TestCreateBoard(t *testing.T) {
	repo := testutil.NewTestStore(t)
	svc := NewService(repo)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, CreateBoardRequest{Name: "Roadmap", Prefix: "rm"})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if board.Prefix != "RM" {
		t.Errorf("Prefix = %q, want uppercased RM", board.Prefix)
	}

	columns, err := svc.GetColumnsByBoard(ctx, board.ID)
	if err != nil {
		t.Fatalf("GetColumnsByBoard: %v", err)
	}
	if len(columns) != 3 {
		t.Errorf("got %d default columns, want 3", len(columns))
	}
}

func TestCreateBoard_Validation(t *testing.T) {
	repo := testutil.NewTestStore(t)
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateBoardRequest
		wantErr error
	}{
		{"empty name", CreateBoardRequest{Prefix: "X"}, ErrEmptyName},
		{"empty prefix", CreateBoardRequest{Name: "X"}, ErrEmptyPrefix},
		{"prefix too long", CreateBoardRequest{Name: "X", Prefix: "TOOLONG"}, ErrPrefixTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBoard(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateBoard = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetBoardByID_Invalid(t *testing.T) {
	repo := testutil.NewTestStore(t)
	svc := NewService(repo)

	if _, err := svc.GetBoardByID(context.Background(), 0); !errors.Is(err, ErrInvalidBoardID) {
		t.Errorf("GetBoardByID(0) = %v, want ErrInvalidBoardID", err)
	}
}
