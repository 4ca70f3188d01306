// Package parquet defines column-oriented export records and writers
// built on github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/streakhq/streak/schema"
)

// DayRow is one calendar day of contribution activity.
type DayRow struct {
	// Date is the midnight timestamp of the day
	Date time.Time `parquet:"date,snappy"`

	// Count is the number of matching commits on that day
	Count int32 `parquet:"count,snappy"`

	// Level is the intensity band the count falls into
	Level string `parquet:"level,snappy"`
}

// RunRow is one recorded aggregation run.
type RunRow struct {
	// RunID is the unique identifier of the run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nil if still running)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the run duration in milliseconds (nil if still running)
	DurationMs *int32 `parquet:"duration_ms,optional,snappy"`

	// Email is the author email the run aggregated for
	Email string `parquet:"email,snappy"`

	// RepoCount is the number of repositories scanned
	RepoCount int32 `parquet:"repo_count,snappy"`

	// Total is the number of contributions found in the window
	Total int32 `parquet:"total,snappy"`
}

// WriteDaysParquet writes day rows to a Parquet file.
func WriteDaysParquet(data []DayRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[DayRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write parquet data: %w", err)
	}
	return nil
}

// WriteRunsParquet writes run rows to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write parquet data: %w", err)
	}
	return nil
}

// ConvertDayContributions converts day breakdowns to Parquet rows.
func ConvertDayContributions(days []schema.DayContribution) []DayRow {
	rows := make([]DayRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, DayRow{
			Date:  day.Date,
			Count: int32(day.Count),
			Level: string(day.Level),
		})
	}
	return rows
}

// ConvertRunRecords converts history run records to Parquet rows.
func ConvertRunRecords(runs []schema.RunRecord) []RunRow {
	rows := make([]RunRow, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, RunRow{
			RunID:      run.RunID,
			StartTime:  run.StartTime,
			EndTime:    run.EndTime,
			DurationMs: run.DurationMs,
			Email:      run.Email,
			RepoCount:  run.RepoCount,
			Total:      run.Total,
		})
	}
	return rows
}
