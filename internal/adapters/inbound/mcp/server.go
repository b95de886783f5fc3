package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server with all mongoshift tools registered.
// The projectPath is the root directory of the Java repository to analyze.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"mongoshift",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
