package core

import (
	"sort"

	"github.com/gitpulse/gitpulse/schema"
)

// rankRepositories sorts repositories by commit count in descending order.
// Ties break on path so repositories that share a name keep a stable,
// unambiguous order.
func rankRepositories(repos []schema.RepositoryRecord) []schema.RepositoryRecord {
	sort.Slice(repos, func(i, j int) bool {
		if repos[i].Commits != repos[j].Commits {
			return repos[i].Commits > repos[j].Commits
		}
		return repos[i].Path < repos[j].Path
	})
	return repos
}
