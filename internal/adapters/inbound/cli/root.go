package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "phishguard",
		Short:         "Check URLs for phishing",
		Long:          "PhishGuard analyzes URLs against a phishing detection backend and explains what makes each one safe or suspicious.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newReportsCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
