// Package agg has aggregation logic for Git activity data.
package agg

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// AggregateRepository runs a single git log pass over one repository and
// folds every commit at or after the cutoff into a RepositoryRecord.
//
// The log format interleaves commit headers with numstat lines:
//
//	--<hash>|<author>|<iso-date>|<subject>
//	<added>\t<deleted>\t<path>
//
// An error from the log command means the path is not a usable Git
// repository; callers are expected to log and skip it.
func AggregateRepository(ctx context.Context, client contract.GitClient, repoPath string, cutoff time.Time) (schema.RepositoryRecord, error) {
	out, err := client.GetActivityLog(ctx, repoPath, cutoff)
	if err != nil {
		return schema.RepositoryRecord{}, err
	}

	record := schema.RepositoryRecord{
		Name:          filepath.Base(repoPath),
		Path:          repoPath,
		DailyActivity: make(schema.DailyActivity),
		RecentCommits: []schema.CommitInfo{},
	}
	parseAndAggregateLog(string(out), cutoff, &record)
	return record, nil
}

// parseAndAggregateLog walks the git log output line by line and folds
// commit headers and numstat lines into the record.
func parseAndAggregateLog(out string, cutoff time.Time, record *schema.RepositoryRecord) {
	// Tracks whether stats lines belong to a counted commit. Commits dated
	// before the cutoff are dropped along with their stats, so the window
	// bound holds regardless of what the log command returned.
	counting := false

	for line := range strings.SplitSeq(out, "\n") {
		line = strings.Trim(line, " \t\r\n'")

		if strings.HasPrefix(line, "--") {
			commit, ok := parseCommitHeader(line)
			counting = ok && !commit.Date.Before(cutoff)
			if counting {
				aggregateCommit(commit, record)
			}
			continue
		}

		if line == "" || !counting {
			continue
		}

		added, deleted, ok := parseFileStatsLine(line)
		if !ok {
			continue
		}
		record.FilesChanged++
		record.LinesAdded += added
		record.LinesRemoved += deleted
	}
}

// parseCommitHeader extracts hash, author, date and subject from a commit
// header line. The subject is split off last so embedded pipes survive.
func parseCommitHeader(line string) (schema.CommitInfo, bool) {
	if len(line) < 5 {
		return schema.CommitInfo{}, false
	}

	parts := strings.SplitN(line[2:], "|", 4) // hash|author|date|subject
	if len(parts) < 3 {
		return schema.CommitInfo{}, false
	}

	date, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return schema.CommitInfo{}, false
	}

	commit := schema.CommitInfo{
		Hash:   schema.ShortHash(parts[0]),
		Author: parts[1],
		Date:   date,
	}
	if len(parts) == 4 {
		commit.Message = parts[3]
	}
	return commit, true
}

// aggregateCommit bumps the commit counters and day bucket, and appends to
// the recent list while it still has room. git log emits newest commits
// first, so appending in order keeps the list most-recent-first.
func aggregateCommit(commit schema.CommitInfo, record *schema.RepositoryRecord) {
	record.Commits++
	record.DailyActivity[schema.DayKey(commit.Date)]++
	if len(record.RecentCommits) < schema.MaxRecentCommits {
		record.RecentCommits = append(record.RecentCommits, commit)
	}
}

// parseFileStatsLine parses a numstat line into added and deleted counts.
// Each parsed line counts as one changed file.
func parseFileStatsLine(line string) (added, deleted int, ok bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, 0, false
	}
	return parseChurnValue(parts[0]), parseChurnValue(parts[1]), true
}

// parseChurnValue converts a numstat count to an int, treating the "-"
// placeholder that git emits for binary files as zero.
func parseChurnValue(value string) int {
	if value == "-" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}
	return 0
}
