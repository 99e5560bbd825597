package cmd

import (
	"fmt"

	"github.com/bnema/tasks-cli/internal/adapters/render/menu"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks with their 1-based numbers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), menu.TaskList(app.service.Tasks()))
			return err
		},
	}
}
