package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear all tasks without --yes")
			}

			if err := app.service.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "All tasks have been cleared!")
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing without prompting")

	return cmd
}
