// Package core has core logic for locating repositories, aggregating their
// activity and assembling scan results.
package core

import (
	"context"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/schema"
)

// ExecuteScan runs the scan pipeline and renders the dashboard, or writes a
// JSON export when one was requested. It serves as the main entry point for
// the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetScanResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	writer := outwriter.NewOutWriter()
	if cfg.ExportJSON {
		return writer.WriteExport(result, cfg, duration)
	}
	return writer.WriteDashboard(result, cfg, duration)
}

// GetScanResults runs the scan pipeline and returns the result without
// rendering it. Embedded callers such as the MCP server consume this.
func GetScanResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.ScanResult, time.Duration, error) {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := runScanCore(ctx, cfg, client, mgr)
	if err != nil {
		return nil, 0, err
	}
	return result, time.Since(start), nil
}

// GetRepositoryPaths locates repositories under the configured scan roots
// without aggregating their activity.
func GetRepositoryPaths(cfg *contract.Config) []string {
	return locateAcrossRoots(cfg)
}
