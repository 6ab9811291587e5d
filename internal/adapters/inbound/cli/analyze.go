package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/tui"
	"github.com/phishguard/phishguard/internal/application"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput bool
		detailed   bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze a URL for phishing",
		Long:  "Submit a URL to the detection backend and show the verdict, confidence and the checks behind it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if noCache {
				cfg.CacheDisabled = true
			}

			svc := application.NewAnalyzeService(
				newAPIClient(cfg),
				newResultCache(cfg),
				newAnalysisHistory(),
			)

			result, resp, err := svc.Analyze(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case detailed:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysisReport(result))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResultCard(resp))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the analysis as JSON")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show the full analysis report")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the local result cache")

	return cmd
}
