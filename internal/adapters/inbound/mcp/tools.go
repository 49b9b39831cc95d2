package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/config"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/document"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/gitinfo"
	"github.com/readmedoctor/readme-doctor/internal/application"
	"github.com/readmedoctor/readme-doctor/internal/domain"
	"github.com/readmedoctor/readme-doctor/internal/domain/fixer"
	"github.com/readmedoctor/readme-doctor/internal/domain/scoring"
)

func registerTools(s *server.MCPServer, projectPath string, logger *log.Logger) {
	s.AddTool(
		mcplib.NewTool("readme_check",
			mcplib.WithDescription("Scores the project README against the section checklist and returns the report as JSON"),
			mcplib.WithString("path", mcplib.Description("Document path relative to the project (default from config)")),
		),
		handleCheck(projectPath, logger),
	)

	s.AddTool(
		mcplib.NewTool("readme_fix",
			mcplib.WithDescription("Appends boilerplate blocks for missing README sections. Existing content is never edited."),
			mcplib.WithString("path", mcplib.Description("Document path relative to the project (default from config)")),
			mcplib.WithBoolean("dry_run", mcplib.Description("Return the blocks that would be appended without writing")),
		),
		handleFix(projectPath, logger),
	)

	s.AddTool(
		mcplib.NewTool("readme_rules",
			mcplib.WithDescription("Lists every scoring rule with its weight and whether config enables it"),
		),
		handleRules(projectPath, logger),
	)
}

// checkResult is the readme_check payload.
type checkResult struct {
	*domain.ScoreReport
	Grade    string `json:"grade"`
	MinScore int    `json:"min_score"`
	Passes   bool   `json:"passes"`
}

// ruleInfo is one entry of the readme_rules payload.
type ruleInfo struct {
	Section domain.Section `json:"section"`
	Weight  int            `json:"weight"`
	Enabled bool           `json:"enabled"`
	Fixable bool           `json:"fixable"`
}

func newCheckService(logger *log.Logger) *application.CheckService {
	return application.NewCheckService(config.New(), document.New(), logger)
}

func runCheck(projectPath, docPath string, logger *log.Logger) (*checkResult, error) {
	svc := newCheckService(logger)
	cfg, err := svc.LoadConfig(projectPath)
	if err != nil {
		return nil, err
	}
	report, err := svc.Check(projectPath, docPath, cfg)
	if err != nil {
		return nil, err
	}
	return &checkResult{
		ScoreReport: report,
		Grade:       report.Grade(),
		MinScore:    cfg.MinScore,
		Passes:      application.EnforceThreshold([]*domain.ScoreReport{report}, cfg.MinScore) == nil,
	}, nil
}

func handleCheck(projectPath string, logger *log.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := runCheck(projectPath, request.GetString("path", ""), logger)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleFix(projectPath string, logger *log.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := newCheckService(logger).LoadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}

		svc := application.NewFixService(document.New(), gitinfo.New(), logger)
		plan, err := svc.Fix(projectPath, request.GetString("path", ""), cfg, domain.FixOptions{
			DryRun: request.GetBool("dry_run", false),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(plan)
	}
}

func handleRules(projectPath string, logger *log.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := newCheckService(logger).LoadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules failed: %v", err)), nil
		}

		rules := scoring.Rules()
		out := make([]ruleInfo, 0, len(rules))
		for _, r := range rules {
			out = append(out, ruleInfo{
				Section: r.Section,
				Weight:  r.Weight,
				Enabled: cfg.Enabled(r.Section),
				Fixable: fixer.Fixable(r.Section),
			})
		}
		return jsonResult(out)
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
