package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/deathchest/internal/adapters/repo/document"
	"github.com/bnema/deathchest/internal/application"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/spf13/cobra"
)

type claimSummaryJSON struct {
	Owner      string    `json:"owner"`
	Slots      int       `json:"slots"`
	CapturedAt time.Time `json:"captured_at"`
}

func newClaimsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Inspect and purge saved death inventories",
	}

	cmd.AddCommand(
		newClaimsListCmd(app),
		newClaimsShowCmd(app),
		newClaimsPurgeCmd(app),
	)

	return cmd
}

func newClaimsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players with unclaimed items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.admin.ListClaims(cmd.Context())
			if err != nil {
				return err
			}

			return writeClaimsOutput(cmd, app, summaries, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeClaimsOutput(cmd *cobra.Command, app *app, summaries []application.ClaimSummary, asJSON bool) error {
	if asJSON {
		out := make([]claimSummaryJSON, 0, len(summaries))
		for _, summary := range summaries {
			out = append(out, claimSummaryJSON{
				Owner:      summary.Owner.String(),
				Slots:      summary.Slots,
				CapturedAt: summary.CapturedAt,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.renderList(summaries, app.renderOptions())
	if err != nil {
		return fmt.Errorf("render claims: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newClaimsShowCmd(app *app) *cobra.Command {
	var playerID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved items of one player",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := domain.ParsePlayerID(playerID)
			if err != nil {
				return err
			}

			inv, err := app.admin.GetClaim(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := document.Marshal(inv)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			rendered, err := app.renderDetail(inv, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render claim: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player UUID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the stored document")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newClaimsPurgeCmd(app *app) *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete a player's saved items without returning them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := domain.ParsePlayerID(playerID)
			if err != nil {
				return err
			}

			if err := app.admin.PurgeClaim(cmd.Context(), id); err != nil {
				return err
			}

			app.logger.WithField("player", id.String()).Warn("saved inventory purged")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Purged saved inventory of %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player UUID")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
