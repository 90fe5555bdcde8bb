package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	at := time.Date(2026, 8, 20, 14, 32, 5, 0, time.UTC)
	assert.Equal(t, "activity-20260820-143205.json", ExportFileName(at))
}

func TestPrintExportResults(t *testing.T) {
	result := sampleScanResult()
	cfg := &contract.Config{ExportDir: t.TempDir()}

	err := PrintExportResults(result, cfg, time.Second)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.ExportDir, ExportFileName(result.GeneratedAt)))
	require.NoError(t, err)

	var doc schema.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	// The document round-trips the in-memory result.
	assert.Equal(t, result.Summary, doc.Summary)
	assert.Equal(t, result.DailyActivity, doc.DailyActivity)
	assert.Equal(t, schema.ExportSchemaVersion, doc.Metadata.Version)
	assert.Equal(t, "7 days", doc.Metadata.Period)
	assert.True(t, doc.Metadata.Timestamp.Equal(result.GeneratedAt))

	require.Len(t, doc.Repositories, 3)
	alpha := doc.Repositories[0]
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, result.Repos[0].DailyActivity, alpha.DailyActivity)
	require.Len(t, alpha.RecentCommits, 2)
	assert.Equal(t, "9f3c2b1a", alpha.RecentCommits[0].Hash)
	assert.Equal(t, "Maya Torres", alpha.RecentCommits[0].Author)
	assert.True(t, alpha.RecentCommits[0].Date.Equal(result.Repos[0].RecentCommits[0].Date))
}

func TestPrintExportResultsCreatesDir(t *testing.T) {
	result := sampleScanResult()
	cfg := &contract.Config{ExportDir: filepath.Join(t.TempDir(), "nested", "exports")}

	err := PrintExportResults(result, cfg, time.Second)
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.ExportDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPrintExportResultsUnwritable(t *testing.T) {
	// A regular file in the directory path makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := &contract.Config{ExportDir: filepath.Join(blocker, "exports")}

	err := PrintExportResults(sampleScanResult(), cfg, time.Second)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export directory")
}
