package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/phishguard/phishguard/internal/domain"
)

// NewPhishGuardMCPServer creates a new MCP server with all PhishGuard tools
// and resources registered, backed by the given detection API.
func NewPhishGuardMCPServer(api domain.DetectionAPI) *server.MCPServer {
	s := server.NewMCPServer(
		"phishguard",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, api)
	registerResources(s, api)

	return s
}
