// Package parquet provides data structures and functions for exporting scan
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// ScanRun represents a single repository scan run with metadata.
// This struct maps to the gitpulse_scan_runs database table.
type ScanRun struct {
	// RunID is the unique identifier for this scan run
	RunID string `parquet:"run_id,snappy"`

	// StartTime is when the scan began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the scan completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the scan run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// RootPath is the directory tree the scan walked
	RootPath string `parquet:"root_path,snappy"`

	// WindowDays is the lookback window length in days
	WindowDays int32 `parquet:"window_days,snappy"`

	// ReposScanned is the number of repositories aggregated in this run
	ReposScanned int32 `parquet:"repos_scanned,snappy"`

	// TotalCommits is the number of commits inside the window across all repositories
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// FilesChanged is the number of file touches across all repositories
	FilesChanged int32 `parquet:"files_changed,snappy"`

	// LinesAdded is the number of insertions across all repositories
	LinesAdded int32 `parquet:"lines_added,snappy"`

	// LinesRemoved is the number of deletions across all repositories
	LinesRemoved int32 `parquet:"lines_removed,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RepoActivity represents per-repository counters for a single scan run.
// This struct maps to the gitpulse_repo_activity database table.
type RepoActivity struct {
	// RunID references the parent scan run
	RunID string `parquet:"run_id,snappy"`

	// RepoName is the base name of the repository directory
	RepoName string `parquet:"repo_name,snappy"`

	// RepoPath is the absolute path of the repository
	RepoPath string `parquet:"repo_path,snappy"`

	// ScanTime is when this repository was aggregated (stored as TIMESTAMP with nanosecond precision)
	ScanTime time.Time `parquet:"scan_time,snappy"`

	// Commits is the number of commits inside the window
	Commits int32 `parquet:"commits,snappy"`

	// FilesChanged is the number of file touches inside the window
	FilesChanged int32 `parquet:"files_changed,snappy"`

	// LinesAdded is the number of insertions inside the window
	LinesAdded int32 `parquet:"lines_added,snappy"`

	// LinesRemoved is the number of deletions inside the window
	LinesRemoved int32 `parquet:"lines_removed,snappy"`
}

// WriteScanRunsParquet writes a slice of ScanRun structs to a Parquet file.
func WriteScanRunsParquet(data []ScanRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScanRun struct tags
	writer := parquet.NewGenericWriter[ScanRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRepoActivityParquet writes a slice of RepoActivity structs to a Parquet file.
func WriteRepoActivityParquet(data []RepoActivity, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RepoActivity struct tags
	writer := parquet.NewGenericWriter[RepoActivity](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchScanRuns generates sample ScanRun data for demonstration.
func MockFetchScanRuns() []ScanRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(45 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"days":30,"path":"/home/dev/projects"}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(2 * time.Minute)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"days":7,"path":"/home/dev/work"}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []ScanRun{
		{
			RunID:         "5e0fca5a-1b0c-4fd4-93a4-111111111111",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			RootPath:      "/home/dev/projects",
			WindowDays:    30,
			ReposScanned:  12,
			TotalCommits:  148,
			FilesChanged:  412,
			LinesAdded:    9820,
			LinesRemoved:  3544,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         "5e0fca5a-1b0c-4fd4-93a4-222222222222",
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			RootPath:      "/home/dev/work",
			WindowDays:    7,
			ReposScanned:  4,
			TotalCommits:  23,
			FilesChanged:  61,
			LinesAdded:    1204,
			LinesRemoved:  389,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         "5e0fca5a-1b0c-4fd4-93a4-333333333333",
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			RootPath:      "/home/dev/projects",
			WindowDays:    30,
			ReposScanned:  0,
			TotalCommits:  0,
			FilesChanged:  0,
			LinesAdded:    0,
			LinesRemoved:  0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchRepoActivity generates sample RepoActivity data for demonstration.
func MockFetchRepoActivity() []RepoActivity {
	now := time.Now()

	return []RepoActivity{
		{
			RunID:        "5e0fca5a-1b0c-4fd4-93a4-111111111111",
			RepoName:     "api-gateway",
			RepoPath:     "/home/dev/projects/api-gateway",
			ScanTime:     now.Add(-2 * time.Hour),
			Commits:      42,
			FilesChanged: 118,
			LinesAdded:   2850,
			LinesRemoved: 960,
		},
		{
			RunID:        "5e0fca5a-1b0c-4fd4-93a4-111111111111",
			RepoName:     "billing",
			RepoPath:     "/home/dev/projects/billing",
			ScanTime:     now.Add(-2 * time.Hour),
			Commits:      17,
			FilesChanged: 44,
			LinesAdded:   720,
			LinesRemoved: 310,
		},
		{
			RunID:        "5e0fca5a-1b0c-4fd4-93a4-222222222222",
			RepoName:     "dotfiles",
			RepoPath:     "/home/dev/work/dotfiles",
			ScanTime:     now.Add(-24 * time.Hour),
			Commits:      3,
			FilesChanged: 5,
			LinesAdded:   62,
			LinesRemoved: 18,
		},
	}
}

// ConvertScanRunRecords converts schema.ScanRunRecord to ScanRun for Parquet export.
func ConvertScanRunRecords(records []schema.ScanRunRecord) []ScanRun {
	result := make([]ScanRun, len(records))
	for i, record := range records {
		result[i] = ScanRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			RootPath:      record.RootPath,
			WindowDays:    record.WindowDays,
			ReposScanned:  record.ReposScanned,
			TotalCommits:  record.TotalCommits,
			FilesChanged:  record.FilesChanged,
			LinesAdded:    record.LinesAdded,
			LinesRemoved:  record.LinesRemoved,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertRepoActivityRecords converts schema.RepoActivityRecord to RepoActivity for Parquet export.
func ConvertRepoActivityRecords(records []schema.RepoActivityRecord) []RepoActivity {
	result := make([]RepoActivity, len(records))
	for i, record := range records {
		result[i] = RepoActivity{
			RunID:        record.RunID,
			RepoName:     record.RepoName,
			RepoPath:     record.RepoPath,
			ScanTime:     record.ScanTime,
			Commits:      record.Commits,
			FilesChanged: record.FilesChanged,
			LinesAdded:   record.LinesAdded,
			LinesRemoved: record.LinesRemoved,
		}
	}
	return result
}
