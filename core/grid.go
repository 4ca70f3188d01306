package core

import (
	"sort"

	"github.com/streakhq/streak/schema"
)

// SortKeys returns the map's keys in ascending order. The grid builder
// depends on this ordering to commit week columns exactly once.
func SortKeys(m schema.ContributionMap) []int {
	keys := make([]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// BuildColumns folds sorted day-keys into committed week columns. A fresh
// buffer starts at day-in-week 0 and the buffer is committed when the
// traversal reaches day-in-week 6, so a week missing its Saturday slot never
// appears in the grid. Week 0 commits with six entries because day-keys
// start at 1.
func BuildColumns(keys []int, m schema.ContributionMap) schema.CalendarGrid {
	grid := make(schema.CalendarGrid, schema.WeeksInWindow)
	var column schema.WeekColumn
	for _, key := range keys {
		week := key / 7
		day := key % 7
		if day == 0 {
			column = schema.WeekColumn{}
		}
		column = append(column, m[key])
		if day == 6 {
			grid[week] = column
		}
	}
	return grid
}
