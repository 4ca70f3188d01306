package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/iocache"
	"github.com/streakhq/streak/schema"
)

// historySetup loads minimal configuration needed for run-history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no commit-log caching for history commands)
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run-history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by aggregation commands. This avoids email
// resolution and registry processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage run-history tracking and exports",
	Long: `Manage the run history that records every aggregation streak performs.

When enabled (--history-backend), streak stores one record per run:
- Start and end timestamps plus duration
- The author email aggregated
- How many repositories were read and the contribution total

This enables longitudinal views of your own activity and data export for
analytics tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show run-history statistics
  export  - Export runs to Parquet for analytics
  clear   - Remove all run records
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  streak history status

  # Export for analysis in pandas/DuckDB
  streak history export --output-file runs.parquet`,
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded runs",
	Long: `Delete every stored run record from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the runs table

Examples:
  # Export before clearing
  streak history export --output-file backup.parquet
  streak history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// For SQLite the connect string, when set, is the database file.
		dbPath := cfg.HistoryDBConnect
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		if err := iocache.ClearHistory(cfg.HistoryBackend, dbPath, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyStatusCmd shows run-history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run-history statistics and connection details",
	Long: `Show detailed information about run-history tracking.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps
- Total commits recorded across all runs

Use this to:
- Verify tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check run-history status
  streak history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports run records to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all stored run records to Parquet format.

Each row is one aggregation run: run ID, start/end time, duration, email,
repository count and contribution total.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all runs
  streak history export --output-file runs.parquet

  # Use with DuckDB for analysis
  streak history export --output-file runs.parquet
  duckdb -c "SELECT * FROM read_parquet('runs.parquet') ORDER BY start_time DESC LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the run-history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run-history store.

Migrations allow:
- Upgrading to new schema versions when streak is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  streak history migrate

  # Migrate to specific version
  streak history migrate --target-version 1

  # Rollback to the initial state
  streak history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
