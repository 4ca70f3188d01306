package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// runsTable is the name of the run-history table.
const runsTable = "streak_runs"

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported history backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Check that the server is running and credentials are valid", backend, err)
	}

	// Create the table schema
	if _, err := db.Exec(getCreateRunsQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", runsTable, err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// getCreateRunsQuery returns the CREATE TABLE query for streak_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				duration_ms INT,
				email VARCHAR(255) NOT NULL,
				repo_count INT NOT NULL,
				total INT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				duration_ms INT,
				email TEXT NOT NULL,
				repo_count INT NOT NULL,
				total INT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TEXT NOT NULL,
				end_time TEXT,
				duration_ms INTEGER,
				email TEXT NOT NULL,
				repo_count INTEGER NOT NULL,
				total INTEGER
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new run record and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, email string, repoCount int) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)

	var runID int64
	var err error
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, email, repo_count) VALUES ($1, $2, $3) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, startTime, email, repoCount).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, email, repo_count) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, formatTime(startTime, hs.backend), email, repoCount)
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert run record: %w", err)
	}

	return runID, nil
}

// EndRun updates the run record with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, total int) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	// First, get the start_time to calculate duration
	quotedTableName := quoteTableName(runsTable, hs.backend)
	var startTime time.Time

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = $1`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, quotedTableName)
	}

	row := hs.db.QueryRow(query, runID)

	// Handle different time storage formats per backend
	switch hs.backend {
	case schema.SQLiteBackend:
		var startTimeStr string
		if err := row.Scan(&startTimeStr); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
		var err error
		startTime, err = time.Parse(time.RFC3339Nano, startTimeStr)
		if err != nil {
			return fmt.Errorf("failed to parse start_time: %w", err)
		}
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&startTime); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
	}

	// Calculate duration in milliseconds
	durationMs := endTime.Sub(startTime).Milliseconds()

	// Update the run record with completion data
	var updateQuery string
	var args []any

	switch hs.backend {
	case schema.PostgreSQLBackend:
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = $1, duration_ms = $2, total = $3 WHERE run_id = $4`, quotedTableName)
		args = []any{endTime, durationMs, total, runID}
	default: // SQLite and MySQL
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = ?, duration_ms = ?, total = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, hs.backend), durationMs, total, runID}
	}

	if _, err := hs.db.Exec(updateQuery, args...); err != nil {
		return fmt.Errorf("failed to update run record: %w", err)
	}

	return nil
}

// GetAllRuns retrieves every recorded run from the store, oldest first.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)
	query := fmt.Sprintf("SELECT run_id, start_time, end_time, duration_ms, email, repo_count, total FROM %s ORDER BY run_id", quotedTableName)

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query run records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord

	for rows.Next() {
		var record schema.RunRecord
		var total sql.NullInt32

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.DurationMs, &record.Email, &record.RepoCount, &total); err != nil {
				return nil, fmt.Errorf("failed to scan run record: %w", err)
			}
			// Parse start time
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			// Parse end time if present
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.DurationMs, &record.Email, &record.RepoCount, &total); err != nil {
				return nil, fmt.Errorf("failed to scan run record: %w", err)
			}
		}

		if total.Valid {
			record.Total = total.Int32
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run records: %w", err)
	}

	return results, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := hs.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns == 0 {
		return status, nil
	}

	// Get last run info
	lastRunQuery := fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName)
	row = hs.db.QueryRow(lastRunQuery)

	switch hs.backend {
	case schema.SQLiteBackend:
		var lastRunTimeStr string
		if err := row.Scan(&status.LastRunID, &lastRunTimeStr); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse last run time: %w", err)
		}
		status.LastRunTime = lastRunTime
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
	}

	// Get oldest run time
	oldestRunQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quotedTableName)
	row = hs.db.QueryRow(oldestRunQuery)

	switch hs.backend {
	case schema.SQLiteBackend:
		var oldestRunTimeStr string
		if err := row.Scan(&oldestRunTimeStr); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		oldestRunTime, err := time.Parse(time.RFC3339Nano, oldestRunTimeStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse oldest run time: %w", err)
		}
		status.OldestRunTime = oldestRunTime
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&status.OldestRunTime); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	// Get total commits across all recorded runs
	commitsQuery := fmt.Sprintf("SELECT COALESCE(SUM(total), 0) FROM %s", quotedTableName)
	row = hs.db.QueryRow(commitsQuery)
	if err := row.Scan(&status.TotalCommits); err != nil {
		return status, fmt.Errorf("failed to get total commits: %w", err)
	}

	return status, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
