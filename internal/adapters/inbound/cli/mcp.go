package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/phishguard/phishguard/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the PhishGuard MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start PhishGuard MCP server (stdio)",
		Long:  "Start the PhishGuard MCP server using stdio transport. This lets AI assistants analyze URLs, submit reports and read detection statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := mcpadapter.NewPhishGuardMCPServer(newAPIClient(cfg))
			return server.ServeStdio(s)
		},
	}
	return cmd
}
