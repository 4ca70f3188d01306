// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/streakhq/streak/schema"
)

// GitClient defines the necessary operations against local Git repositories.
// This allows the aggregation logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// CommitLog returns the author email and author time of every non-merge
	// commit authored at or after since, newest first.
	CommitLog(ctx context.Context, repoPath string, since time.Time) ([]schema.CommitEvent, error)

	// RepoHash returns the current HEAD commit hash of the repository.
	RepoHash(ctx context.Context, repoPath string) (string, error)

	// ConfiguredEmail returns the user.email git resolves for the given path.
	ConfiguredEmail(ctx context.Context, repoPath string) (string, error)
}

// RepoRegistry defines the persistent, ordered list of repositories to aggregate.
// This allows the generation pipeline to be tested without touching the filesystem.
type RepoRegistry interface {
	// List returns every registered repository path in registration order.
	List() ([]string, error)

	// Add registers the given paths, skipping ones already present,
	// and returns how many were newly added.
	Add(paths []string) (int, error)

	// Remove deregisters the given paths and returns how many were removed.
	Remove(paths []string) (int, error)
}

// CacheManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type CacheManager interface {
	GetLogStore() CacheStore
	GetRunStore() HistoryStore
}

// CacheStore defines the interface for commit-log cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for recording aggregation runs.
type HistoryStore interface {
	// BeginRun creates a new run record and returns its unique ID
	BeginRun(startTime time.Time, email string, repoCount int) (int64, error)

	// EndRun updates the run record with completion data
	EndRun(runID int64, endTime time.Time, total int) error

	// GetAllRuns returns every recorded run, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
