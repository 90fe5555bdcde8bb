// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the GitPulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"GitPulse Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: scan_activity ---
	s.AddTool(mcp.NewTool("scan_activity",
		mcp.WithDescription("Scan a directory tree for git repositories and aggregate their commit activity over a trailing window."),
		mcp.WithString("path", mcp.Description("Root directory to scan (defaults to the configured scan roots).")),
		mcp.WithNumber("days", mcp.Description("Trailing window length in days. Defaults to the configured window.")),
		mcp.WithNumber("max_repos", mcp.Description("Upper bound of repositories scanned.")),
	), h.handleScanActivity)

	// --- 2. Tool: list_repositories ---
	s.AddTool(mcp.NewTool("list_repositories",
		mcp.WithDescription("Locate git repositories under a directory tree without aggregating their activity."),
		mcp.WithString("path", mcp.Description("Root directory to scan (defaults to the configured scan roots).")),
		mcp.WithNumber("max_repos", mcp.Description("Upper bound of repositories located.")),
	), h.handleListRepositories)

	return s
}

// StartMCPServer starts the GitPulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
