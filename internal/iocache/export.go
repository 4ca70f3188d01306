package iocache

import (
	"errors"
	"fmt"

	"github.com/streakhq/streak/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to a Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run-history store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run history is not configured. Set --history-backend to enable tracking")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting run history from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	// Retrieve all recorded runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve run history: %w", err)
	}

	// Convert to Parquet format and write
	rows := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write run history: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(rows), outputFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
