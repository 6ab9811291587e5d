package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/tui"
	"github.com/phishguard/phishguard/internal/application"
)

func newReportCmd() *cobra.Command {
	var (
		username    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "report <url>",
		Short: "Report a phishing URL",
		Long:  "Submit a community report for a URL you believe is phishing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewReportService(newAPIClient(cfg))
			ack, err := svc.Submit(cmd.Context(), args[0], username, description)
			if err != nil {
				return fmt.Errorf("submitting report: %w", err)
			}

			if ack.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ack.Message)
			} else if ack.Success {
				fmt.Fprintln(cmd.OutOrStdout(), "Report submitted.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Reporter name (defaults to Anonymous)")
	cmd.Flags().StringVar(&description, "description", "", "Why this URL looks like phishing")

	return cmd
}

func newReportsCmd() *cobra.Command {
	var (
		page       int
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List community phishing reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewReportService(newAPIClient(cfg))
			result, err := svc.Reports(cmd.Context(), page, limit)
			if err != nil {
				return fmt.Errorf("fetching reports: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReports(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Reports per page")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")

	return cmd
}
