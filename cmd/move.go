package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rvannatta/kanva/internal/services/board"
)

var moveCmd = &cobra.Command{
	Use:   "move <task-id> <board-id>",
	Short: "Move a task onto another board",
	Long: `Move sends a task to the first column of another board, the same
way holding a card over a board tab does. The move is subject to the same
role permissions as the board.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	taskID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}
	boardID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid board id %q", args[1])
	}

	container, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := container.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	perm := board.NewMovePermission(currentUser())
	if !perm.CanMoveTaskToBoard(t, boardID) {
		return fmt.Errorf("not permitted to move %s to board %d", t.TicketCode, boardID)
	}

	if err := container.TaskService.MoveTaskToBoard(ctx, taskID, boardID); err != nil {
		return err
	}

	target, err := container.BoardService.GetBoardByID(ctx, boardID)
	if err != nil {
		return err
	}
	fmt.Printf("moved %s to %s\n", t.TicketCode, target.Name)
	return nil
}
