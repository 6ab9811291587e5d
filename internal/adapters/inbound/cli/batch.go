package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/tui"
	"github.com/phishguard/phishguard/internal/application"
)

func newBatchCmd() *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "batch [url ...]",
		Short: "Analyze many URLs at once",
		Long:  "Analyze URLs given as arguments or read from a file, one URL per line. Invalid entries are listed instead of submitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading URL list: %w", err)
				}
				urls = append(urls, application.ParseURLList(string(data))...)
			}
			if len(urls) == 0 {
				return fmt.Errorf("no URLs given; pass arguments or --file")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewBatchService(newAPIClient(cfg))
			outcome, err := svc.AnalyzeAll(cmd.Context(), urls)
			if err != nil {
				return fmt.Errorf("batch analysis failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, outcome)
			}

			out := cmd.OutOrStdout()
			if len(outcome.Invalid) > 0 {
				fmt.Fprintf(out, "Skipped %d invalid entries: %s\n\n",
					len(outcome.Invalid), strings.Join(outcome.Invalid, ", "))
			}
			for i := range outcome.Results {
				fmt.Fprint(out, tui.RenderResultCard(&outcome.Results[i]))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "File with one URL per line")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
