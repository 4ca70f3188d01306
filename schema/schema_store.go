package schema

import "time"

// CachedLog is the payload persisted per repository by the commit-log cache.
// Events are stored unfiltered by author so one entry serves any email; the
// aggregator filters after retrieval.
type CachedLog struct {
	RepoPath string        `json:"repo_path"`
	HeadHash string        `json:"head_hash"`
	Events   []CommitEvent `json:"events"`
}

// RunRecord represents a row from the streak_runs history table.
type RunRecord struct {
	RunID      int64
	StartTime  time.Time
	EndTime    *time.Time
	DurationMs *int32
	Email      string
	RepoCount  int32
	Total      int32
}

// CacheStatus represents the status of the commit-log cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the run-history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	TotalCommits  int64     `json:"total_commits"`
}
