package cmd

import (
	"fmt"

	"github.com/bnema/tasks-cli/internal/adapters/render/menu"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), menu.Statistics(app.service.Statistics()))
			return err
		},
	}
}

func newHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show tasks with creation and completion times",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), menu.History(app.service.History()))
			return err
		},
	}
}
