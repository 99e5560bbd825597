package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := app.service.Export(cmd.Context(), output)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Tasks exported to %s\n", path)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default embeds the current date-time)")

	return cmd
}

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append tasks from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := app.service.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d tasks from %s\n", count, args[0])
			return err
		},
	}
}
