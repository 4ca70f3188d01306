// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/streakhq/streak/internal/contract"
)

// NewMCPServer builds the MCP server with all contribution tools registered.
// It is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Streak Contribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg, mgr: mgr}

	// --- 1. Tool: get_contribution_graph ---
	s.AddTool(mcp.NewTool("get_contribution_graph",
		mcp.WithDescription("Render the author's contribution calendar for the last six months as plain text."),
		mcp.WithString("email",
			mcp.Description("Author email to aggregate. Defaults to the configured email."),
		),
	), h.handleGetContributionGraph)

	// --- 2. Tool: get_contribution_days ---
	s.AddTool(mcp.NewTool("get_contribution_days",
		mcp.WithDescription("Return per-day contribution counts for the last six months as JSON, oldest day first."),
		mcp.WithString("email",
			mcp.Description("Author email to aggregate. Defaults to the configured email."),
		),
		mcp.WithNumber("min_count",
			mcp.Description("Only include days with at least this many contributions."),
		),
	), h.handleGetContributionDays)

	// --- 3. Tool: list_repositories ---
	s.AddTool(mcp.NewTool("list_repositories",
		mcp.WithDescription("List the repository paths registered for aggregation."),
	), h.handleListRepositories)

	return s
}

// StartMCPServer starts the MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
