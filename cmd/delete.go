package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a task by its current number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			removed, err := app.service.Delete(cmd.Context(), position)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' has been deleted!\n", removed.Title)
			return err
		},
	}
}
