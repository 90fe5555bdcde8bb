package outwriter

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleScanResult builds a three-repository result with activity today and
// yesterday, shared by the dashboard and export tests.
func sampleScanResult() *schema.ScanResult {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	repos := []schema.RepositoryRecord{
		{
			Name: "alpha", Path: "/work/alpha",
			Commits: 7, FilesChanged: 9, LinesAdded: 120, LinesRemoved: 45,
			DailyActivity: schema.DailyActivity{schema.DayKey(now): 4, schema.DayKey(yesterday): 3},
			RecentCommits: []schema.CommitInfo{
				{Hash: "9f3c2b1a", Message: "Add cache store retries", Author: "Maya Torres", Date: now},
				{Hash: "8e2d1c0b", Message: "Refactor dashboard writer", Author: "Alice Chen", Date: yesterday},
			},
		},
		{
			Name: "bravo", Path: "/work/bravo",
			Commits: 2, FilesChanged: 3, LinesAdded: 15, LinesRemoved: 4,
			DailyActivity: schema.DailyActivity{schema.DayKey(yesterday): 2},
			RecentCommits: []schema.CommitInfo{
				{Hash: "7d1c0b9a", Message: "Bump dependencies", Author: "renovate[bot]", Date: yesterday},
			},
		},
		{
			Name: "dormant", Path: "/work/dormant",
			DailyActivity: schema.DailyActivity{},
			RecentCommits: []schema.CommitInfo{},
		},
	}
	return &schema.ScanResult{
		GeneratedAt: now,
		WindowDays:  7,
		Repos:       repos,
		Summary: schema.ActivitySummary{
			ReposScanned: 3, TotalCommits: 9, FilesChanged: 12, LinesAdded: 135, LinesRemoved: 49,
		},
		DailyActivity: schema.DailyActivity{schema.DayKey(now): 4, schema.DayKey(yesterday): 5},
		ActiveRepos:   2,
	}
}

func TestWriteDashboard(t *testing.T) {
	result := sampleScanResult()
	cfg := &contract.Config{
		UseColors:    false,
		UseEmojis:    false,
		Width:        100,
		CacheBackend: schema.SQLiteBackend,
	}

	var buf bytes.Buffer
	err := writeDashboard(&buf, result, cfg, 150*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "GIT ACTIVITY DASHBOARD")

	// Summary section carries every total.
	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "Repositories scanned:")
	assert.Contains(t, output, "Total commits (7 days):")
	assert.Contains(t, output, "Lines added:")

	// Breakdown shows only active repositories.
	assert.Contains(t, output, "REPOSITORY BREAKDOWN")
	assert.Contains(t, output, "alpha")
	assert.Contains(t, output, "bravo")
	assert.Contains(t, output, "+120/-45")
	assert.NotContains(t, output, "dormant")

	assert.Contains(t, output, "DAILY ACTIVITY (last 7 days)")
	assert.Contains(t, output, "peak")

	// Recent commits carry message and abbreviated author.
	assert.Contains(t, output, "RECENT COMMITS")
	assert.Contains(t, output, "Add cache store retries")
	assert.Contains(t, output, "Maya T")
	assert.Contains(t, output, "renovate[bot]")

	assert.Contains(t, output, "Scan completed in 150ms")
	assert.Contains(t, output, "Cache backend: sqlite")
}

func TestWriteDashboardEmoji(t *testing.T) {
	result := sampleScanResult()
	cfg := &contract.Config{UseEmojis: true, Width: 100}

	var buf bytes.Buffer
	err := writeDashboard(&buf, result, cfg, time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "🔥 GIT ACTIVITY DASHBOARD")
	assert.Contains(t, output, "📊 SUMMARY")
	assert.Contains(t, output, "📁 REPOSITORY BREAKDOWN")
	assert.Contains(t, output, "📝 RECENT COMMITS")
}

func TestWriteDashboardEmpty(t *testing.T) {
	result := &schema.ScanResult{
		GeneratedAt:   time.Now(),
		WindowDays:    7,
		DailyActivity: schema.DailyActivity{},
	}
	cfg := &contract.Config{Width: 100}

	var buf bytes.Buffer
	err := writeDashboard(&buf, result, cfg, time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "No repository activity in this window.")
	assert.Contains(t, output, "No activity data available.")
	assert.Contains(t, output, "No commits in this window.")
}

func TestWriteDashboardDuplicateNames(t *testing.T) {
	// Two checkouts of the same project are disambiguated by path.
	now := time.Now()
	result := &schema.ScanResult{
		GeneratedAt: now,
		WindowDays:  7,
		Repos: []schema.RepositoryRecord{
			{Name: "api", Path: "/work/api", Commits: 3, DailyActivity: schema.DailyActivity{schema.DayKey(now): 3}},
			{Name: "api", Path: "/forks/api", Commits: 1, DailyActivity: schema.DailyActivity{schema.DayKey(now): 1}},
		},
		Summary:       schema.ActivitySummary{ReposScanned: 2, TotalCommits: 4},
		DailyActivity: schema.DailyActivity{schema.DayKey(now): 4},
		ActiveRepos:   2,
	}
	cfg := &contract.Config{Width: 100}

	var buf bytes.Buffer
	err := writeDashboard(&buf, result, cfg, time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "/work/api")
	assert.Contains(t, output, "/forks/api")
}

func TestCollectRecentCommits(t *testing.T) {
	t.Run("newest first across repositories", func(t *testing.T) {
		entries := collectRecentCommits(sampleScanResult().Repos)

		require.Len(t, entries, 3)
		assert.Equal(t, "alpha", entries[0].repo)
		assert.Equal(t, "Add cache store retries", entries[0].commit.Message)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].commit.Date.After(entries[i-1].commit.Date))
		}
	})

	t.Run("capped at the display limit", func(t *testing.T) {
		base := time.Now()
		var repos []schema.RepositoryRecord
		for r := range 4 {
			repo := schema.RepositoryRecord{Name: fmt.Sprintf("repo%d", r)}
			for c := range 5 {
				repo.RecentCommits = append(repo.RecentCommits, schema.CommitInfo{
					Message: fmt.Sprintf("commit %d-%d", r, c),
					Date:    base.Add(-time.Duration(r*5+c) * time.Minute),
				})
			}
			repos = append(repos, repo)
		}

		entries := collectRecentCommits(repos)

		assert.Len(t, entries, schema.MaxRecentDisplay)
		assert.Equal(t, "commit 0-0", entries[0].commit.Message)
	})
}

func TestDuplicateNames(t *testing.T) {
	repos := []schema.RepositoryRecord{
		{Name: "api", Path: "/work/api"},
		{Name: "api", Path: "/forks/api"},
		{Name: "web", Path: "/work/web"},
	}

	dupes := duplicateNames(repos)

	assert.True(t, dupes["api"])
	assert.False(t, dupes["web"])
}

func TestSectionTitle(t *testing.T) {
	withEmoji := &contract.Config{UseEmojis: true}
	plain := &contract.Config{UseEmojis: false}

	assert.Equal(t, "📊 SUMMARY", sectionTitle("📊", "SUMMARY", withEmoji))
	assert.Equal(t, "SUMMARY", sectionTitle("📊", "SUMMARY", plain))
}
