package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/iocache"
	"github.com/streakhq/streak/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no run tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by aggregation commands. This avoids email
// resolution and registry processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the commit-log cache (improves performance)",
	Long: `Manage the commit-log cache that speeds up repeated aggregations.

Streak caches each repository's commit log keyed by its HEAD hash, so a
repository that has not changed is never re-read from Git. New commits move
HEAD and invalidate the entry on the next run automatically.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  streak cache status

  # Clear cache after rewriting repository history
  streak cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached commit-log data",
	Long: `Delete all cached commit logs from the configured backend.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Testing aggregation without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  streak cache clear

  # Clear MySQL cache (set connection string via env variable)
  STREAK_CACHE_BACKEND=mysql STREAK_CACHE_DB_CONNECT="..." streak cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// For SQLite the connect string, when set, is the database file.
		dbPath := cfg.CacheDBConnect
		if dbPath == "" {
			dbPath = contract.GetCacheDBFilePath()
		}
		if err := iocache.ClearCache(cfg.CacheBackend, dbPath, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the commit-log cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Use this to:
- Verify cache is working and connected
- Monitor cache growth over time
- Check when cache was last updated

Examples:
  # Check cache status
  streak cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetLogStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
