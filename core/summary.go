package core

import (
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// BuildScanResult folds per-repository records into the final scan result:
// summed totals, a merged day histogram and a ranked repository list. An
// empty input produces a result with all counters at zero.
func BuildScanResult(repos []schema.RepositoryRecord, days int) *schema.ScanResult {
	summary := schema.ActivitySummary{ReposScanned: len(repos)}
	merged := make(schema.DailyActivity)
	active := 0

	for _, repo := range repos {
		summary.TotalCommits += repo.Commits
		summary.FilesChanged += repo.FilesChanged
		summary.LinesAdded += repo.LinesAdded
		summary.LinesRemoved += repo.LinesRemoved
		for day, count := range repo.DailyActivity {
			merged[day] += count
		}
		if repo.Active() {
			active++
		}
	}

	return &schema.ScanResult{
		GeneratedAt:   time.Now(),
		WindowDays:    days,
		Repos:         rankRepositories(repos),
		Summary:       summary,
		DailyActivity: merged,
		ActiveRepos:   active,
	}
}
