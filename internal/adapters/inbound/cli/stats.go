package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/tui"
	"github.com/phishguard/phishguard/internal/application"
)

func newStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show detection statistics",
		Long:  "Show aggregate statistics from the detection backend: totals, phishing ratio, common TLDs and recent detections.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewStatsService(newAPIClient(cfg))
			stats, err := svc.Statistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching statistics: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, stats)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatistics(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output statistics as JSON")

	return cmd
}
