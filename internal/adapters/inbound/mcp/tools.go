package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/phishguard/phishguard/internal/application"
	"github.com/phishguard/phishguard/internal/domain"
)

// registerTools registers all PhishGuard MCP tools on the given server.
func registerTools(s *server.MCPServer, api domain.DetectionAPI) {
	// 1. phishguard_analyze
	s.AddTool(
		mcplib.NewTool("phishguard_analyze",
			mcplib.WithDescription("Analyze a URL for phishing. Returns the verdict, confidence, URL features and the reasoning as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("The URL to analyze"),
			),
		),
		handleAnalyze(api),
	)

	// 2. phishguard_batch
	s.AddTool(
		mcplib.NewTool("phishguard_batch",
			mcplib.WithDescription("Analyze several URLs in one call. Returns raw detection results plus the entries rejected as invalid"),
			mcplib.WithString("urls",
				mcplib.Required(),
				mcplib.Description("URLs separated by newlines or commas"),
			),
		),
		handleBatch(api),
	)

	// 3. phishguard_statistics
	s.AddTool(
		mcplib.NewTool("phishguard_statistics",
			mcplib.WithDescription("Returns aggregate detection statistics: totals, phishing ratio, common TLDs and recent detections"),
		),
		handleStatistics(api),
	)

	// 4. phishguard_report
	s.AddTool(
		mcplib.NewTool("phishguard_report",
			mcplib.WithDescription("Submit a community report for a phishing URL"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("The URL being reported"),
			),
			mcplib.WithString("username", mcplib.Description("Reporter name (defaults to Anonymous)")),
			mcplib.WithString("description", mcplib.Description("Why this URL looks like phishing")),
		),
		handleReport(api),
	)
}

func handleAnalyze(api domain.DetectionAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewAnalyzeService(api, nil, nil)
		result, _, err := svc.Analyze(ctx, rawURL)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleBatch(api domain.DetectionAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("urls")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		urls := application.ParseURLList(strings.ReplaceAll(raw, ",", "\n"))
		if len(urls) == 0 {
			return errorResult("no URLs given"), nil
		}

		svc := application.NewBatchService(api)
		outcome, err := svc.AnalyzeAll(ctx, urls)
		if err != nil {
			return errorResult(fmt.Sprintf("batch analysis failed: %v", err)), nil
		}
		return jsonResult(outcome)
	}
}

func handleStatistics(api domain.DetectionAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		stats, err := application.NewStatsService(api).Statistics(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("fetching statistics failed: %v", err)), nil
		}
		return jsonResult(stats)
	}
}

func handleReport(api domain.DetectionAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		username, _ := request.GetArguments()["username"].(string)
		description, _ := request.GetArguments()["description"].(string)

		svc := application.NewReportService(api)
		ack, err := svc.Submit(ctx, rawURL, username, description)
		if err != nil {
			return errorResult(fmt.Sprintf("submitting report failed: %v", err)), nil
		}
		if ack.Message != "" {
			return textResult(ack.Message), nil
		}
		return jsonResult(ack)
	}
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
