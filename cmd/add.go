package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.service.Add(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' has been added!\n", task.Title)
			return err
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Optional task description")

	return cmd
}
