package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const scoreURI = "readme://score"

func registerResources(s *server.MCPServer, projectPath string, logger *log.Logger) {
	s.AddResource(
		mcplib.NewResource(
			scoreURI,
			"README Score",
			mcplib.WithResourceDescription("Current checklist score of the project README"),
			mcplib.WithMIMEType("application/json"),
		),
		handleScoreResource(projectPath, logger),
	)
}

func handleScoreResource(projectPath string, logger *log.Logger) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := runCheck(projectPath, "", logger)
		if err != nil {
			return nil, fmt.Errorf("check failed: %w", err)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling score: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      scoreURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
