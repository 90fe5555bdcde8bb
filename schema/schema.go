// Package schema has the models and constants shared by all parts of gitpulse.
package schema

import "time"

// CommitInfo is a single commit kept in a repository's recent-commit list.
type CommitInfo struct {
	Hash    string    `json:"hash"`    // Abbreviated commit hash
	Message string    `json:"message"` // Commit subject line
	Author  string    `json:"author"`  // Author name as recorded by git
	Date    time.Time `json:"date"`    // Author date
}

// DailyActivity maps a local calendar day (formatted per DayFormat) to the
// number of commits made on that day.
type DailyActivity map[string]int

// RepositoryRecord holds the aggregated activity for one repository over the
// lookback window. Records are immutable once aggregation completes.
type RepositoryRecord struct {
	Name          string        `json:"name"`           // Base name of the repository directory
	Path          string        `json:"path"`           // Absolute filesystem path
	Commits       int           `json:"commits"`        // Commits within the window
	FilesChanged  int           `json:"files_changed"`  // File touches summed across all commits
	LinesAdded    int           `json:"lines_added"`    // Insertions summed across all commits
	LinesRemoved  int           `json:"lines_removed"`  // Deletions summed across all commits
	DailyActivity DailyActivity `json:"daily_activity"` // Commits per local calendar day
	RecentCommits []CommitInfo  `json:"recent_commits"` // Most recent first, at most MaxRecentCommits
}

// Active reports whether the repository saw any commits in the window.
func (r RepositoryRecord) Active() bool {
	return r.Commits > 0
}
