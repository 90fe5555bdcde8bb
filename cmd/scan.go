package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd performs the activity scan and renders the dashboard or the export.
var scanCmd = &cobra.Command{
	Use:   "scan [root-path]",
	Short: "Scan for Git repositories and summarize their recent activity.",
	Long: `Walk a directory tree, locate every Git repository inside it, and summarize
commit activity over a trailing window of days.

For each repository the scan collects:
- Commit count within the window
- Files changed plus lines added and removed
- A per-day activity histogram
- The most recent commits with author and date

Results render as a terminal dashboard with a daily activity chart, or as a
timestamped JSON document when --export-json is set.

Examples:
  # Scan the current directory with the default 30-day window
  gitpulse scan

  # Scan a projects folder over the last week
  gitpulse scan ~/projects --days 7

  # Skip vendored checkouts and build output
  gitpulse scan --exclude vendor --exclude dist

  # Write a JSON export for downstream tooling
  gitpulse scan --export-json --export-dir ./exports

  # Record scan history for later inspection and export
  gitpulse scan --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run activity scan", err)
		}
	},
}
