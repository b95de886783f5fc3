package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/config"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/gitinfo"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/history"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/llm"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/scanner"
	"github.com/mongoshift/mongoshift/internal/application"
	"github.com/mongoshift/mongoshift/internal/domain"
)

// registerTools registers all mongoshift MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("mongoshift_analyze",
			mcplib.WithDescription("Scan the Java repository's persistence layer and return entities, repositories, configuration files and relationships as JSON"),
		),
		handleAnalyze(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("mongoshift_plan",
			mcplib.WithDescription("Run the full planning pipeline and return the MongoDB migration plan as JSON"),
		),
		handlePlan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("mongoshift_impact",
			mcplib.WithDescription("Run the planning pipeline and return the per-file impact report with estimated effort"),
		),
		handleImpact(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("mongoshift_check_schema",
			mcplib.WithDescription("Run the planning pipeline and verify the proposed schema's collection names against MongoDB naming restrictions"),
		),
		handleCheckSchema(projectPath),
	)
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(scanner.New(), config.New(), gitinfo.New())
}

func newPipelineService() *application.PipelineService {
	return application.NewPipelineService(
		scanner.New(),
		config.New(),
		func(cfg domain.LLMConfig) domain.Advisor { return llm.New(cfg) },
		history.New(),
		gitinfo.New(),
	)
}

func handleAnalyze(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analysis, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(analysis)
	}
}

func handlePlan(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := newPipelineService().Run(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}
		return jsonResult(result.Plan)
	}
}

func handleImpact(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := newPipelineService().Run(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("impact estimation failed: %v", err)), nil
		}
		return jsonResult(result.Impact)
	}
}

func handleCheckSchema(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := newPipelineService().Run(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}

		issues, suggestions := domain.VerifySchemaNames(result.Plan.Schema)
		return jsonResult(map[string]any{
			"valid":       len(issues) == 0,
			"issues":      issues,
			"suggestions": suggestions,
		})
	}
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
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
