// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// GitClient defines the necessary operations for repository activity scans.
// This allows the core scan logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetActivityLog returns the raw commit log output needed for window aggregation.
	// A zero since time means no lower bound.
	GetActivityLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetActivityStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking scan runs and per-repository activity.
type HistoryStore interface {
	// BeginScan creates a new scan run and returns its unique ID
	BeginScan(startTime time.Time, rootPath string, windowDays int, configParams map[string]any) (string, error)

	// EndScan updates the scan run with completion data
	EndScan(runID string, endTime time.Time, summary schema.ActivitySummary) error

	// RecordRepoActivity stores per-repository counters for a run
	RecordRepoActivity(runID string, record schema.RepoActivityRecord) error

	// GetAllScanRuns returns every recorded scan run
	GetAllScanRuns() ([]schema.ScanRunRecord, error)

	// GetAllRepoActivity returns every recorded per-repository row
	GetAllRepoActivity() ([]schema.RepoActivityRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
