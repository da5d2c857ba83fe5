package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deathchest",
		Short:         "Death chest: keep dropped inventories until their owner claims them",
		Long:          "deathchest captures a player's inventory on death and serves it back through a take-only claim chest. The CLI manages the claim point, inspects and purges stored claims, and replays host event scripts against the listener.",
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

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChestCmd(app),
		newClaimsCmd(app),
		newReplayCmd(app),
	)

	return rootCmd
}
