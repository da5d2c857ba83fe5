package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/spf13/cobra"
)

func newChestCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chest",
		Short: "Manage the claim chest location",
	}

	cmd.AddCommand(
		newChestSetCmd(app),
		newChestShowCmd(app),
	)

	return cmd
}

func newChestSetCmd(app *app) *cobra.Command {
	var location domain.BlockLocation

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the block players right-click to claim their items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			point := domain.ClaimPoint{Location: location}
			if err := app.admin.SetClaimPoint(cmd.Context(), point); err != nil {
				return err
			}

			app.logger.WithField("location", location.String()).Info("claim point updated")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Death chest location set to %s\n", location)
			return err
		},
	}

	cmd.Flags().StringVar(&location.World, "world", "", "World name")
	cmd.Flags().IntVar(&location.X, "x", 0, "Block X coordinate")
	cmd.Flags().IntVar(&location.Y, "y", 0, "Block Y coordinate")
	cmd.Flags().IntVar(&location.Z, "z", 0, "Block Z coordinate")
	_ = cmd.MarkFlagRequired("world")

	return cmd
}

func newChestShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured claim chest location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			point, err := app.admin.ClaimPoint()
			if errors.Is(err, domain.ErrClaimPointNotConfigured) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Death chest location is not set.")
				return err
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), point.Location)
			return err
		},
	}
}
