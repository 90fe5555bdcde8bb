package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gitpulse/gitpulse/core/agg"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/schema"
)

// runScanCore performs the common Locate, Aggregate and Summarize steps.
func runScanCore(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (*schema.ScanResult, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScanHeader(cfg)
	}

	// --- 0. Begin scan tracking (if configured) ---
	runID := beginScanTracking(cfg, mgr)

	// --- 1. Locate repositories across the scan roots ---
	repoPaths := locateAcrossRoots(cfg)
	if len(repoPaths) == 0 {
		return nil, errors.New("no git repositories found")
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogRepositoriesFound(cfg, len(repoPaths))
	}

	// --- 2. Aggregate each repository in turn (with caching) ---
	repos := make([]schema.RepositoryRecord, 0, len(repoPaths))
	for _, repoPath := range repoPaths {
		record, err := agg.CachedAggregateRepository(ctx, cfg, client, mgr, repoPath)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping %s", repoPath), err)
			continue
		}
		repos = append(repos, record)
	}

	// --- 3. Build the summary ---
	result := BuildScanResult(repos, cfg.LookbackDays)

	// --- 4. End scan tracking ---
	if runID != "" {
		endScanTracking(mgr, runID, result)
	}

	return result, nil
}

// locateAcrossRoots walks every scan root in order. Repositories that appear
// under more than one root are kept once, and the repository cap spans all
// roots together.
func locateAcrossRoots(cfg *contract.Config) []string {
	seen := make(map[string]struct{})
	repoPaths := make([]string, 0)

	for _, root := range cfg.ScanRoots {
		remaining := cfg.MaxRepos - len(repoPaths)
		if remaining <= 0 {
			break
		}
		for _, repoPath := range LocateRepositories(root, cfg.Excludes, remaining) {
			if _, ok := seen[repoPath]; ok {
				continue
			}
			seen[repoPath] = struct{}{}
			repoPaths = append(repoPaths, repoPath)
		}
	}

	return repoPaths
}

// beginScanTracking opens a history row for this run. Tracking failures are
// logged and leave the scan itself untouched.
func beginScanTracking(cfg *contract.Config, mgr contract.CacheManager) string {
	history := mgr.GetHistoryStore()
	if history == nil {
		return ""
	}

	rootPath := ""
	if len(cfg.ScanRoots) > 0 {
		rootPath = cfg.ScanRoots[0]
	}
	configParams := map[string]any{
		"days":      cfg.LookbackDays,
		"max_repos": cfg.MaxRepos,
		"excludes":  cfg.Excludes,
		"roots":     cfg.ScanRoots,
	}

	runID, err := history.BeginScan(time.Now(), rootPath, cfg.LookbackDays, configParams)
	if err != nil {
		contract.LogWarn("Scan tracking initialization failed", err)
		return ""
	}
	return runID
}

// endScanTracking writes the per-repository rows and closes out the run.
func endScanTracking(mgr contract.CacheManager, runID string, result *schema.ScanResult) {
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}

	scanTime := time.Now()
	for _, repo := range result.Repos {
		record := schema.RepoActivityRecord{
			RunID:        runID,
			RepoName:     repo.Name,
			RepoPath:     repo.Path,
			ScanTime:     scanTime,
			Commits:      int32(repo.Commits),
			FilesChanged: int32(repo.FilesChanged),
			LinesAdded:   int32(repo.LinesAdded),
			LinesRemoved: int32(repo.LinesRemoved),
		}
		if err := history.RecordRepoActivity(runID, record); err != nil {
			contract.LogWarn(fmt.Sprintf("Scan tracking failed for %s", repo.Path), err)
		}
	}

	if err := history.EndScan(runID, scanTime, result.Summary); err != nil {
		contract.LogWarn("Failed to finalize scan tracking", err)
	}
}
