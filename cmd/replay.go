package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/deathchest/internal/adapters/host/sim"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *app) *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a JSON-lines event script through the listener on a simulated host",
		Long:  "replay reads one event per line (join, give, death, interact, click, close, quit, shutdown) and feeds it to the death chest listener, using the configured storage and claim point. Pass - to read the script from stdin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var script io.Reader = cmd.InOrStdin()
			if scriptPath != "-" {
				file, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				script = file
			}

			host := sim.NewHost(app.newListener(app.settings), app.logger)
			results, err := host.Replay(cmd.Context(), script)
			for _, result := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", result.Line, result.Event, result.Player, result.Result)
			}

			if closed := host.Shutdown(); closed > 0 {
				app.logger.WithField("sessions", closed).Debug("open claim sessions dropped at end of replay")
			}

			return err
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to the event script, or - for stdin")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}
