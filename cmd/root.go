package cmd

import (
	"github.com/bnema/tasks-cli/internal/session"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tasks",
		Short:         "Local task list manager with an inactivity auto-exit guard",
		Long:          "tasks keeps a small task list in a local JSON file. Run it bare for the interactive numbered menu (which auto-exits after a period of inactivity), or use the subcommands for one-shot scripted access to the same store.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		watchdog := session.NewWatchdog(
			session.WithTimeout(app.sessionTimeout),
			session.WithPollInterval(app.pollInterval),
			session.WithOutput(cmd.OutOrStdout()),
		)
		loop := session.NewLoop(app.service, watchdog, cmd.InOrStdin(), cmd.OutOrStdout())
		return loop.Run(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAddCmd(app),
		newListCmd(app),
		newCompleteCmd(app),
		newReopenCmd(app),
		newDeleteCmd(app),
		newStatsCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newClearCmd(app),
	)

	return rootCmd
}
