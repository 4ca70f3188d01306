package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Level represents the visual intensity band of a daily count.
	Level string

	// DatabaseBackend represents the database backend for a store.
	DatabaseBackend string
)

// Rolling-window constants. The window and the sentinel are part of the output
// contract and must not change.
const (
	// DaysInWindow is the lookback horizon in days.
	DaysInWindow = 183

	// WeeksInWindow is the number of whole weeks inside the horizon.
	WeeksInWindow = 26

	// OutOfRange marks an event older than the horizon. It is returned by the
	// day bucketing step and is never stored as a map key.
	OutOfRange = 99999
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All contribution levels supported, ordered by intensity.
const (
	LevelNone   Level = "none"   // count 0
	LevelLow    Level = "low"    // counts 1-3
	LevelMedium Level = "medium" // counts 4-6
	LevelHigh   Level = "high"   // counts 7-9
	LevelMax    Level = "max"    // counts 10+
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default for the cache
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default for history
)

// LegendCounts are the representative counts shown in the legend, one per level.
var LegendCounts = []int{0, 1, 4, 7, 10}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// LevelForCount maps a daily count onto its level. The boundaries are
// inclusive and fixed: 0 none, 1-3 low, 4-6 medium, 7-9 high, 10+ max.
func LevelForCount(count int) Level {
	switch {
	case count <= 0:
		return LevelNone
	case count <= 3:
		return LevelLow
	case count <= 6:
		return LevelMedium
	case count <= 9:
		return LevelHigh
	default:
		return LevelMax
	}
}
