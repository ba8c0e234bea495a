package database_test

import (
	"context"
	"testing"

	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/testutil"
)

func TestCreateTask_AssignsTicketCode(t *testing.T) {
	repo := testutil.NewTestStore(t)
	board, _ := testutil.SeedBoard(t, repo, "Platform", "PL")

	first := testutil.SeedTask(t, repo, board, "first")
	second := testutil.SeedTask(t, repo, board, "second")

	if first.TicketCode != "PL-1" {
		t.Errorf("first ticket code = %q, want PL-1", first.TicketCode)
	}
	if second.TicketCode != "PL-2" {
		t.Errorf("second ticket code = %q, want PL-2", second.TicketCode)
	}
	if second.Position != 1 {
		t.Errorf("second task position = %d, want 1", second.Position)
	}
}

func TestAddRelation_RoundTripsBothDirections(t *testing.T) {
	repo := testutil.NewTestStore(t)
	board, _ := testutil.SeedBoard(t, repo, "Platform", "PL")
	ctx := context.Background()

	parent := testutil.SeedTask(t, repo, board, "parent")
	child := testutil.SeedTask(t, repo, board, "child")

	// Add as a child edge from the parent's point of view.
	if err := repo.AddRelation(ctx, parent.ID, child.ID, models.RelationChild); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}

	gotParent, err := repo.GetTask(ctx, parent.ID)
	if err != nil {
		t.Fatalf("GetTask(parent): %v", err)
	}
	gotChild, err := repo.GetTask(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetTask(child): %v", err)
	}

	if !gotParent.ChildIDs.Has(child.ID) {
		t.Error("parent should list child in ChildIDs")
	}
	if !gotChild.ParentIDs.Has(parent.ID) {
		t.Error("child should list parent in ParentIDs")
	}
	if gotParent.ParentIDs.Has(child.ID) || gotChild.ChildIDs.Has(parent.ID) {
		t.Error("directed edge leaked into the opposite sets")
	}
}

func TestAddRelation_ParentRequestStoresSameEdge(t *testing.T) {
	repo := testutil.NewTestStore(t)
	board, _ := testutil.SeedBoard(t, repo, "Platform", "PL")
	ctx := context.Background()

	a := testutil.SeedTask(t, repo, board, "a")
	b := testutil.SeedTask(t, repo, board, "b")

	// "b is my parent" from a's point of view is the same edge as
	// "a is my child" from b's.
	if err := repo.AddRelation(ctx, a.ID, b.ID, models.RelationParent); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}

	gotA, _ := repo.GetTask(ctx, a.ID)
	if !gotA.ParentIDs.Has(b.ID) {
		t.Error("a should list b in ParentIDs")
	}

	// Inserting the same edge via the other direction must collide.
	if err := repo.AddRelation(ctx, b.ID, a.ID, models.RelationChild); err == nil {
		t.Error("duplicate edge via opposite direction should violate the primary key")
	}
}

func TestAddRelation_RelatedIsSymmetric(t *testing.T) {
	repo := testutil.NewTestStore(t)
	board, _ := testutil.SeedBoard(t, repo, "Platform", "PL")
	ctx := context.Background()

	a := testutil.SeedTask(t, repo, board, "a")
	b := testutil.SeedTask(t, repo, board, "b")

	if err := repo.AddRelation(ctx, b.ID, a.ID, models.RelationRelated); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}

	gotA, _ := repo.GetTask(ctx, a.ID)
	gotB, _ := repo.GetTask(ctx, b.ID)
	if !gotA.RelatedIDs.Has(b.ID) || !gotB.RelatedIDs.Has(a.ID) {
		t.Error("related edge should appear on both tasks")
	}

	// The normalized row makes the reverse insert a duplicate.
	if err := repo.AddRelation(ctx, a.ID, b.ID, models.RelationRelated); err == nil {
		t.Error("related edge should be stored once regardless of direction")
	}
}

func TestMoveTaskToBoard_LandsInFirstColumn(t *testing.T) {
	repo := testutil.NewTestStore(t)
	source, _ := testutil.SeedBoard(t, repo, "Source", "SRC")
	target, targetCols := testutil.SeedBoard(t, repo, "Target", "TGT")
	ctx := context.Background()

	task := testutil.SeedTask(t, repo, source, "movable")
	existing := testutil.SeedTask(t, repo, target, "already there")
	_ = existing

	if err := repo.MoveTaskToBoard(ctx, task.ID, target.ID); err != nil {
		t.Fatalf("MoveTaskToBoard: %v", err)
	}

	moved, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if moved.BoardID != target.ID {
		t.Errorf("BoardID = %d, want %d", moved.BoardID, target.ID)
	}
	if moved.ColumnID != targetCols[0].ID {
		t.Errorf("ColumnID = %d, want first column %d", moved.ColumnID, targetCols[0].ID)
	}
	if moved.Position != 1 {
		t.Errorf("Position = %d, want 1 (appended after existing task)", moved.Position)
	}
	if moved.TicketCode != "SRC-1" {
		t.Errorf("TicketCode = %q, want SRC-1 (codes stay stable across moves)", moved.TicketCode)
	}
}

func TestMoveTaskToBoard_UnknownTask(t *testing.T) {
	repo := testutil.NewTestStore(t)
	target, _ := testutil.SeedBoard(t, repo, "Target", "TGT")

	if err := repo.MoveTaskToBoard(context.Background(), 9999, target.ID); err == nil {
		t.Error("moving a nonexistent task should fail")
	}
}

func TestGetTasksByBoard_ScopedToBoard(t *testing.T) {
	repo := testutil.NewTestStore(t)
	a, _ := testutil.SeedBoard(t, repo, "A", "AA")
	b, _ := testutil.SeedBoard(t, repo, "B", "BB")
	ctx := context.Background()

	testutil.SeedTask(t, repo, a, "on a")
	testutil.SeedTask(t, repo, b, "on b")
	testutil.SeedTask(t, repo, b, "also on b")

	tasks, err := repo.GetTasksByBoard(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetTasksByBoard: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.BoardID != b.ID {
			t.Errorf("task %d has BoardID %d, want %d", task.ID, task.BoardID, b.ID)
		}
	}
}
