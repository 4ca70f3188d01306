// Package schema has configs, models and global constants for all parts of streak.
package schema

import "time"

// CommitEvent is a single commit observation normalized from raw git log output.
// Records with a missing email or an unparsable timestamp are dropped during
// ingestion and never reach this type.
type CommitEvent struct {
	Email string    `json:"email"` // Author email, matched exactly against the target
	When  time.Time `json:"when"`  // Author timestamp as recorded in the commit
}

// ContributionMap maps a shifted day-index to the number of matching commits
// bucketed on that day. Keys 1..DaysInWindow are always present; keys above
// DaysInWindow appear on demand when the week-offset shift pushes an event past
// the seeded range. The map is never pruned during aggregation.
type ContributionMap map[int]int

// NewContributionMap returns a map seeded with days 1..DaysInWindow at zero.
func NewContributionMap() ContributionMap {
	m := make(ContributionMap, DaysInWindow)
	for i := DaysInWindow; i > 0; i-- {
		m[i] = 0
	}
	return m
}

// Total sums every value in the map, including counts that belong to weeks the
// grid builder later truncates.
func (m ContributionMap) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// WeekColumn holds the counts of one grid week, indexed by day-in-week
// (key mod 7). Committed columns normally hold 7 entries; week 0 holds 6
// because day-indices start at 1, and the oldest week may hold fewer when
// shifted keys are sparse. Columns are never padded.
type WeekColumn []int

// CalendarGrid maps a week-number (key div 7) to its committed column. Weeks
// whose traversal never reached day-in-week 6 are absent, never partial.
type CalendarGrid map[int]WeekColumn

// GraphData is the immutable snapshot handed to the renderer. The renderer
// reads it and writes bytes; it never mutates Days or Weeks.
type GraphData struct {
	Email  string          // Target author email
	Now    time.Time       // Anchor timestamp the window hangs from
	Offset int             // Week offset at Now, range 1..7
	Days   ContributionMap // Aggregated day counts
	Weeks  CalendarGrid    // Committed week columns
	Total  int             // Sum over Days, computed before rendering
}

// DayContribution is one exported calendar day, derived from a ContributionMap
// by walking daysAgo 0..DaysInWindow. Used by the JSON, CSV and Parquet writers.
type DayContribution struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Level Level     `json:"level"`
}

// RepoStat summarizes one repository's share of the aggregation window.
type RepoStat struct {
	Path       string    // Registered repository path
	Commits    int       // Matching commits inside the window
	LastCommit time.Time // Most recent matching commit; zero when none
}

// RepoListing describes one registry entry for the repos table. Unlike
// RepoStat, LastCommit here is the repository's newest commit by any author.
type RepoListing struct {
	Path       string    // Registered repository path
	Exists     bool      // Whether the path is still a directory on disk
	LastCommit time.Time // Most recent commit; zero when missing or empty
}
