package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/tui"
	"github.com/phishguard/phishguard/internal/application"
)

func newHistoryCmd() *cobra.Command {
	var (
		page       int
		limit      int
		filter     string
		local      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show analysis history",
		Long:  "Show the backend's analysis history, or with --local the log of analyses run from this machine.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				entries, err := newAnalysisHistory().Load()
				if err != nil {
					return fmt.Errorf("loading local history: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, entries)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLocalHistory(entries))
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewStatsService(newAPIClient(cfg))
			result, err := svc.SearchHistory(cmd.Context(), page, limit, filter)
			if err != nil {
				return fmt.Errorf("fetching history: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSearchHistory(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Records per page")
	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, phishing or legitimate")
	cmd.Flags().BoolVar(&local, "local", false, "Show the local analysis log instead")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
