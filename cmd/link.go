package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rvannatta/kanva/internal/models"
)

var linkType string

var linkCmd = &cobra.Command{
	Use:   "link <source-task-id> <target-task-id>",
	Short: "Link two tasks without opening the board",
	Long: `Link creates a relationship between two tasks, the same way a
drag-to-link gesture in the board does. The link is rejected if it would
duplicate an existing relationship or create a cycle.`,
	Args: cobra.ExactArgs(2),
	RunE: runLink,
}

func init() {
	linkCmd.Flags().StringVarP(&linkType, "type", "t", "child",
		"relation type: parent, child or related")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sourceID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid source task id %q", args[0])
	}
	targetID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid target task id %q", args[1])
	}
	relType, err := models.ParseRelationType(linkType)
	if err != nil {
		return err
	}

	container, cleanup, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := container.TaskService.CreateRelation(ctx, sourceID, targetID, relType); err != nil {
		return err
	}

	source, err := container.TaskService.GetTask(ctx, sourceID)
	if err != nil {
		return err
	}
	target, err := container.TaskService.GetTask(ctx, targetID)
	if err != nil {
		return err
	}
	fmt.Printf("linked %s to %s (%s)\n", source.TicketCode, target.TicketCode, relType)
	return nil
}
