package schema

import "time"

// ScanRunRecord represents a row from the gitpulse_scan_runs table.
type ScanRunRecord struct {
	RunID         string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	RootPath      string
	WindowDays    int32
	ReposScanned  int32
	TotalCommits  int32
	FilesChanged  int32
	LinesAdded    int32
	LinesRemoved  int32
	ConfigParams  *string
}

// RepoActivityRecord represents a row from the gitpulse_repo_activity table.
type RepoActivityRecord struct {
	RunID        string
	RepoName     string
	RepoPath     string
	ScanTime     time.Time
	Commits      int32
	FilesChanged int32
	LinesAdded   int32
	LinesRemoved int32
}
