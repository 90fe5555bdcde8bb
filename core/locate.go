package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gitpulse/gitpulse/internal/contract"
)

// LocateRepositories walks the tree under root and collects directories that
// hold a .git entry. Excluded names are skipped by exact match before they
// are descended, so a repository under an excluded directory is never found.
// Unreadable directories are skipped with a warning, and the walk stops once
// maxRepos repositories have been collected. A missing root yields an empty
// result rather than an error.
func LocateRepositories(root string, excludes []string, maxRepos int) []string {
	repoPaths := make([]string, 0)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Cannot read %s", path), err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		// The root itself was asked for explicitly, so only children are
		// subject to exclusion.
		if path != root && contract.IsExcludedName(d.Name(), excludes) {
			return fs.SkipDir
		}

		if isGitRepository(path) {
			repoPaths = append(repoPaths, path)
			if len(repoPaths) >= maxRepos {
				return filepath.SkipAll
			}
		}

		// Keep walking into the repository so nested repositories are
		// found too. The .git directory itself stays excluded.
		return nil
	})

	return repoPaths
}

// isGitRepository reports whether the directory holds a .git entry. Both
// forms count: a directory for regular clones and a file for worktrees.
func isGitRepository(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
