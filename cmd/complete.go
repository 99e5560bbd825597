package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCompleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <number>",
		Short: "Mark a task completed by its current number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			task, err := app.service.Complete(cmd.Context(), position)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' has been marked as completed!\n", task.Title)
			return err
		},
	}
}

func newReopenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <number>",
		Short: "Mark a completed task pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			task, err := app.service.Reopen(cmd.Context(), position)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' is pending again!\n", task.Title)
			return err
		},
	}
}

func parsePosition(raw string) (int, error) {
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("task number must be an integer, got %q", raw)
	}

	return position, nil
}
