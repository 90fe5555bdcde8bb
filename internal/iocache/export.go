package iocache

import (
	"errors"
	"fmt"

	"github.com/gitpulse/gitpulse/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of scan history data to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scan history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scan runs: %d\n", status.TotalRuns)
	fmt.Printf("Total repository records: %d\n", status.TableSizes[repoActivityTable])

	// Retrieve all scan runs
	scanRuns, err := store.GetAllScanRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scan runs: %w", err)
	}

	// Retrieve all repository activity rows
	repoActivity, err := store.GetAllRepoActivity()
	if err != nil {
		return fmt.Errorf("failed to retrieve repository activity: %w", err)
	}

	// Convert to Parquet format
	parquetScanRuns := parquet.ConvertScanRunRecords(scanRuns)
	parquetRepoActivity := parquet.ConvertRepoActivityRecords(repoActivity)

	// Write scan runs to Parquet
	scanRunsFile := outputFile + ".scan_runs.parquet"
	if err := parquet.WriteScanRunsParquet(parquetScanRuns, scanRunsFile); err != nil {
		return fmt.Errorf("failed to write scan runs: %w", err)
	}
	fmt.Printf("Exported %d scan runs to: %s\n", len(parquetScanRuns), scanRunsFile)

	// Write repository activity to Parquet
	repoActivityFile := outputFile + ".repo_activity.parquet"
	if err := parquet.WriteRepoActivityParquet(parquetRepoActivity, repoActivityFile); err != nil {
		return fmt.Errorf("failed to write repository activity: %w", err)
	}
	fmt.Printf("Exported %d repository records to: %s\n", len(parquetRepoActivity), repoActivityFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
