package schema

import "time"

// ActivitySummary is the cross-repository roll-up of a scan.
type ActivitySummary struct {
	ReposScanned int `json:"repos_scanned"` // Repositories scanned, active or not
	TotalCommits int `json:"total_commits"` // Commits within the window across all repositories
	FilesChanged int `json:"files_changed"` // File touches across all repositories
	LinesAdded   int `json:"lines_added"`   // Insertions across all repositories
	LinesRemoved int `json:"lines_removed"` // Deletions across all repositories
}

// ScanResult is the complete outcome of one scan, consumed by the presenters.
type ScanResult struct {
	GeneratedAt   time.Time          // When the scan finished
	WindowDays    int                // Lookback window length
	Repos         []RepositoryRecord // One record per located repository
	Summary       ActivitySummary    // Totals over Repos
	DailyActivity DailyActivity      // Merged per-day histogram over Repos
	ActiveRepos   int                // Repositories with at least one commit
}

// ExportMetadata describes when and how an export document was produced.
type ExportMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Period    string    `json:"period"`
	Version   string    `json:"version"`
}

// ExportDocument is the serialized form of a scan, written by the JSON export
// mode and returned by the MCP scan tool.
type ExportDocument struct {
	Metadata      ExportMetadata     `json:"metadata"`
	Summary       ActivitySummary    `json:"summary"`
	DailyActivity DailyActivity      `json:"daily_activity"`
	Repositories  []RepositoryRecord `json:"repositories"`
}

// NewExportDocument shapes a scan result into its export document.
func NewExportDocument(result ScanResult) ExportDocument {
	return ExportDocument{
		Metadata: ExportMetadata{
			Timestamp: result.GeneratedAt,
			Period:    FormatPeriod(result.WindowDays),
			Version:   ExportSchemaVersion,
		},
		Summary:       result.Summary,
		DailyActivity: result.DailyActivity,
		Repositories:  result.Repos,
	}
}
