package app

import (
	"testing"

	"github.com/rvannatta/kanva/internal/testutil"
)

func TestNew(t *testing.T) {
	repo := testutil.NewTestStore(t)

	// A nil event client is valid; services run without publishing.
	a := New(repo, nil)

	if a == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if a.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if a.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}
	if a.Repo() == nil {
		t.Error("Expected Repo to return the repository")
	}
}

func TestClose(t *testing.T) {
	repo := testutil.NewTestStore(t)

	a := New(repo, nil)

	if err := a.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
