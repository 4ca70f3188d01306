package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// logsTable is the name of the commit-log cache table.
const logsTable = "streak_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetCacheDBFilePath returns the path to the SQLite DB file for commit-log cache storage.
func GetCacheDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetHistoryDBFilePath() string {
	return contract.GetHistoryDBFilePath()
}

// InitStores initializes the global manager with separate commit-log and run-history stores.
// cacheBackend and cacheConnStr can be empty to disable commit-log caching.
// historyBackend and historyConnStr can be empty to disable run tracking.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, historyBackend schema.DatabaseBackend, historyConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize the commit-log store only if a backend is configured
		var logStore contract.CacheStore
		if cacheBackend != "" {
			logStore, err = NewCacheStore(logsTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize commit-log caching: %w", err)
				return
			}
		}

		// Initialize the run-history store only if a backend is configured
		var runStore contract.HistoryStore
		if historyBackend != "" {
			runStore, err = NewHistoryStore(historyBackend, historyConnStr)
			if err != nil {
				if logStore != nil {
					_ = logStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize run history: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.logs = logStore
		Manager.runs = runStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.logs != nil {
			_ = Manager.logs.Close()
		}
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}

// ClearCache clears the commit-log cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, logsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, logsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// ClearHistory clears the run history for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the runs table.
// For NoneBackend, it does nothing.
func ClearHistory(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, runsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, runsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported history backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
