package agg

import (
	"fmt"
	"strings"
	"time"
)

// gitLogScenario represents a single commit scenario for test data generation.
type gitLogScenario struct {
	commitHash string
	author     string
	date       time.Time
	subject    string
	files      []fileChange
}

// fileChange represents a single file change in a commit.
type fileChange struct {
	path      string
	additions int
	deletions int
}

// generateTestGitLog creates a programmatic git log fixture for testing.
func generateTestGitLog(scenarios []gitLogScenario) []byte {
	var lines []string
	for _, scenario := range scenarios {
		lines = append(lines, fmt.Sprintf("--%s|%s|%s|%s",
			scenario.commitHash, scenario.author, scenario.date.Format(time.RFC3339), scenario.subject))
		lines = append(lines, "") // Empty line between header and stats
		for _, file := range scenario.files {
			lines = append(lines, fmt.Sprintf("%d\t%d\t%s", file.additions, file.deletions, file.path))
		}
		lines = append(lines, "") // Empty line between commits
	}
	return []byte(strings.Join(lines, "\n"))
}

// generateDailySeries creates one single-file commit per day, counting back
// from the start date. Hashes are padded so their abbreviated forms differ.
func generateDailySeries(start time.Time, count int) []gitLogScenario {
	scenarios := make([]gitLogScenario, 0, count)
	for i := range count {
		scenarios = append(scenarios, gitLogScenario{
			commitHash: fmt.Sprintf("%08d%s", i, strings.Repeat("f", 32)),
			author:     "Daily Committer",
			date:       start.AddDate(0, 0, -i),
			subject:    fmt.Sprintf("Daily change %d", i),
			files:      []fileChange{{"pkg/daily.go", 1, 1}},
		})
	}
	return scenarios
}
