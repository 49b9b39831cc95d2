package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with the readme-doctor tools and resources
// registered. projectPath is the directory whose README is inspected.
func NewServer(projectPath string, logger *log.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"readme-doctor",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, logger)
	registerResources(s, projectPath, logger)

	return s
}
