// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/debtmap/debtmap/internal/contract"
)

// NewMCPServer initializes and configures the debtmap MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Debtmap Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_debt_report ---
	s.AddTool(mcp.NewTool("get_debt_report",
		mcp.WithDescription("Aggregate maintainability and git change counts into per-path technical-debt hotspot scores."),
		mcp.WithString("target_dir", mcp.Description("Directory to analyze (defaults to the server's configured target).")),
		mcp.WithString("since", mcp.Description("Only count changes since this date (YYYY-MM-DD).")),
		mcp.WithString("sort", mcp.Description("Sort field (path, kind, maintainability, changes, hotspot)."), mcp.Enum("path", "kind", "maintainability", "changes", "hotspot")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("deleted", mcp.Description("Include paths that only exist in git history.")),
	), h.handleGetDebtReport)

	// --- 2. Tool: get_maintainability ---
	s.AddTool(mcp.NewTool("get_maintainability",
		mcp.WithDescription("Score each source file's maintainability index, worst first."),
		mcp.WithString("target_dir", mcp.Description("Directory to analyze.")),
	), h.handleGetMaintainability)

	// --- 3. Tool: get_changes ---
	s.AddTool(mcp.NewTool("get_changes",
		mcp.WithDescription("Count git commits touching each path, most changed first."),
		mcp.WithString("target_dir", mcp.Description("Directory to analyze.")),
		mcp.WithString("since", mcp.Description("Only count changes since this date (YYYY-MM-DD).")),
	), h.handleGetChanges)

	return s
}

// StartMCPServer starts the debtmap MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
