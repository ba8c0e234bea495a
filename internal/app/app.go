package app

import (
	"github.com/rvannatta/kanva/internal/database"
	"github.com/rvannatta/kanva/internal/events"
	boardservice "github.com/rvannatta/kanva/internal/services/board"
	taskservice "github.com/rvannatta/kanva/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.Publisher

	// Service layer (business logic)
	TaskService  taskservice.Service
	BoardService boardservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
// eventClient may be nil; services then skip event publishing.
func New(repo database.DataStore, eventClient events.Publisher) *App {
	return &App{
		repo:         repo,
		eventClient:  eventClient,
		TaskService:  taskservice.NewService(repo, eventClient),
		BoardService: boardservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.eventClient != nil {
		return a.eventClient.Close()
	}
	return nil
}
