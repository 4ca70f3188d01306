package core

import (
	"math"
	"time"

	"github.com/streakhq/streak/schema"
)

// BeginningOfDay truncates t to midnight in t's own location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysSince buckets date into a whole number of days before now. Both
// timestamps are truncated to their local midnights first, and the hour
// difference is divided by 24 and rounded up, so a commit made late on a
// DST-shortened day still lands on its own calendar day. Dates older than
// the window map to OutOfRange; future dates yield negative values that
// pass through unchanged.
func DaysSince(now, date time.Time) int {
	diff := BeginningOfDay(now).Sub(BeginningOfDay(date))
	days := int(math.Ceil(diff.Hours() / 24))
	if days > schema.DaysInWindow {
		return schema.OutOfRange
	}
	return days
}

// WeekOffset is the number of grid rows the current partial week occupies,
// counted from Sunday. Sunday yields 7 and Saturday yields 1, so the result
// is always in 1..7 and today's key is always at least 1.
func WeekOffset(now time.Time) int {
	return 7 - int(now.Weekday())
}
