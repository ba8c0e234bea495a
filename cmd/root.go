package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/rvannatta/kanva/internal/app"
	"github.com/rvannatta/kanva/internal/config"
	"github.com/rvannatta/kanva/internal/database"
	"github.com/rvannatta/kanva/internal/events"
	"github.com/rvannatta/kanva/internal/logging"
	"github.com/rvannatta/kanva/internal/services/board"
	"github.com/rvannatta/kanva/internal/tui/core"
	"github.com/rvannatta/kanva/internal/user"
)

var rootCmd = &cobra.Command{
	Use:   "kanva",
	Short: "Kanva - a terminal kanban board with drag-to-link",
	Long: `Kanva is a terminal kanban board for multiple boards, where task
relationships are drawn with the mouse: drag a card's handle onto another
card to link them, or hold a card over a board tab to move it there.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under the given context so signal
// cancellation reaches the TUI and any in-flight service calls.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := logging.Init(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	container, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	usr := currentUser()
	perm := board.NewMovePermission(usr)

	p := tea.NewProgram(
		core.New(ctx, container.TaskService, container.BoardService, perm, usr, cfg),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// buildApp opens the database and wires the service container. The returned
// cleanup closes everything in reverse order.
func buildApp(ctx context.Context) (*app.App, func(), error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}

	repo := database.NewRepository(db)

	// The event daemon is optional. A failed connect leaves the client
	// disconnected and publishing becomes a no-op with retries.
	eventClient := events.NewClient(socketPath())
	_ = eventClient.Connect(ctx)

	container := app.New(repo, eventClient)
	cleanup := func() {
		_ = container.Close()
		_ = db.Close()
	}
	return container, cleanup, nil
}

func socketPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kanva.sock")
	}
	return filepath.Join(home, ".kanva", "kanva.sock")
}

// currentUser builds the identity the client operates as. The role comes
// from KANVA_ROLE; a local single-user install defaults to admin. Members
// list their boards in KANVA_BOARDS as comma-separated IDs.
func currentUser() *user.User {
	role := user.RoleAdmin
	if v := os.Getenv("KANVA_ROLE"); v != "" {
		role = user.ParseRole(v)
	}

	var boardIDs []int
	if v := os.Getenv("KANVA_BOARDS"); v != "" {
		for _, part := range strings.Split(v, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				boardIDs = append(boardIDs, id)
			}
		}
	}

	return user.New(user.CurrentUsername(), role, boardIDs...)
}
