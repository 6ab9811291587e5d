package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/phishguard/phishguard/internal/application"
	"github.com/phishguard/phishguard/internal/domain"
)

// registerResources registers all PhishGuard MCP resources on the given server.
func registerResources(s *server.MCPServer, api domain.DetectionAPI) {
	// phishguard://statistics - aggregate detection statistics
	s.AddResource(
		mcplib.NewResource(
			"phishguard://statistics",
			"Detection Statistics",
			mcplib.WithResourceDescription("Aggregate detection statistics from the backend"),
			mcplib.WithMIMEType("application/json"),
		),
		handleStatisticsResource(api),
	)
}

func handleStatisticsResource(api domain.DetectionAPI) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		stats, err := application.NewStatsService(api).Statistics(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching statistics: %w", err)
		}

		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling statistics: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "phishguard://statistics",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
