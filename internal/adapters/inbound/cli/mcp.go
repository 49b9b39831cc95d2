package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/readmedoctor/readme-doctor/internal/adapters/inbound/mcp"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the readme-doctor MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(root))
	return cmd
}

func newMCPServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the readme-doctor MCP server (stdio)",
		Long:  "Start the MCP server on stdio so coding assistants can score and fix the project README.",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := root.projectPath()
			if err != nil {
				return err
			}
			root.logger.Debug("serving mcp", "path", projectPath)
			s := mcpadapter.NewServer(projectPath, root.logger)
			return server.ServeStdio(s, server.WithErrorLogger(root.logger.StandardLog()))
		},
	}
}
