package iocache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapRunStore replaces the global run store for the duration of a test.
func swapRunStore(t *testing.T, store contract.HistoryStore) {
	t.Helper()
	Manager.Lock()
	prev := Manager.runs
	Manager.runs = store
	Manager.Unlock()
	t.Cleanup(func() {
		Manager.Lock()
		Manager.runs = prev
		Manager.Unlock()
	})
}

func TestExecuteHistoryExport_RequiresOutputFile(t *testing.T) {
	err := ExecuteHistoryExport("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestExecuteHistoryExport_RequiresRunStore(t *testing.T) {
	swapRunStore(t, nil)

	err := ExecuteHistoryExport(filepath.Join(t.TempDir(), "runs.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestExecuteHistoryExport_NoData(t *testing.T) {
	store := new(MockHistoryStore)
	store.On("GetStatus").Return(schema.HistoryStatus{
		Backend:   "sqlite",
		Connected: true,
		TotalRuns: 0,
	}, nil)
	swapRunStore(t, store)

	err := ExecuteHistoryExport(filepath.Join(t.TempDir(), "runs.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no run history found to export")
	store.AssertExpectations(t)
}

func TestExecuteHistoryExport_StatusError(t *testing.T) {
	store := new(MockHistoryStore)
	store.On("GetStatus").Return(schema.HistoryStatus{}, assert.AnError)
	swapRunStore(t, store)

	err := ExecuteHistoryExport(filepath.Join(t.TempDir(), "runs.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get history status")
	store.AssertExpectations(t)
}

func TestExecuteHistoryExport_WritesParquet(t *testing.T) {
	startTime := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	endTime := startTime.Add(90 * time.Second)
	durationMs := int32(90000)

	store := new(MockHistoryStore)
	store.On("GetStatus").Return(schema.HistoryStatus{
		Backend:   "sqlite",
		Connected: true,
		TotalRuns: 2,
	}, nil)
	store.On("GetAllRuns").Return([]schema.RunRecord{
		{
			RunID:      1,
			StartTime:  startTime,
			EndTime:    &endTime,
			DurationMs: &durationMs,
			Email:      "dev@example.com",
			RepoCount:  3,
			Total:      120,
		},
		{
			RunID:     2,
			StartTime: startTime.Add(time.Hour),
			Email:     "dev@example.com",
			RepoCount: 3,
		},
	}, nil)
	swapRunStore(t, store)

	outputFile := filepath.Join(t.TempDir(), "runs.parquet")
	err := ExecuteHistoryExport(outputFile)
	require.NoError(t, err)

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Export should produce a non-empty file")
	store.AssertExpectations(t)
}
