package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleScanActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.ScanRoots = []string{p}
	}
	if d := request.GetInt("days", 0); d != 0 {
		if err := contract.RevalidateWindow(cfg, d); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid scan parameters: %v", err)), nil
		}
	}
	if m := request.GetInt("max_repos", 0); m > 0 {
		cfg.MaxRepos = m
	}

	result, _, err := core.GetScanResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	doc := schema.NewExportDocument(*result)
	jsonData, _ := json.MarshalIndent(doc, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRepositories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.ScanRoots = []string{p}
	}
	if m := request.GetInt("max_repos", 0); m > 0 {
		cfg.MaxRepos = m
	}

	paths := core.GetRepositoryPaths(cfg)

	payload := struct {
		Count        int      `json:"count"`
		Repositories []string `json:"repositories"`
	}{
		Count:        len(paths),
		Repositories: paths,
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
