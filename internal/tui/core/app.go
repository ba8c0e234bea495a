// Package core wraps the TUI Model behind the tea.Model interface.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/services/board"
	"github.com/rvannatta/kanva/internal/services/task"
	"github.com/rvannatta/kanva/internal/tui"
	"github.com/rvannatta/kanva/internal/user"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, taskSvc task.Service, boardSvc board.Service, perm board.MovePermission, usr *user.User, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, taskSvc, boardSvc, perm, usr, cfg)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return a.model.View()
}
