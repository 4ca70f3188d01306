package core

import (
	"context"
	"fmt"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// AggregateContributions walks the registered repositories in order and
// buckets matching commits into a shifted day-index map. A repository whose
// log cannot be read is skipped with a warning so one broken checkout never
// aborts the run. Cancellation takes effect between repositories and returns
// the partial map.
func AggregateContributions(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, repos []string, now time.Time) schema.ContributionMap {
	contributions := schema.NewContributionMap()
	offset := WeekOffset(now)
	since := BeginningOfDay(now).AddDate(0, 0, -schema.DaysInWindow)

	for _, repoPath := range repos {
		select {
		case <-ctx.Done():
			return contributions
		default:
		}

		events, err := cachedCommitLog(ctx, client, mgr, repoPath, since)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping %s", repoPath), err)
			continue
		}
		fillFromEvents(contributions, events, cfg.Email, now, offset)
	}

	return contributions
}

// fillFromEvents buckets one repository's events into the shared map. Only
// exact email matches count, and the out-of-range check runs on the
// unshifted day value before the week offset is applied.
func fillFromEvents(contributions schema.ContributionMap, events []schema.CommitEvent, email string, now time.Time, offset int) {
	for _, event := range events {
		if event.Email != email {
			continue
		}
		daysAgo := DaysSince(now, event.When)
		if daysAgo == schema.OutOfRange {
			continue
		}
		contributions[daysAgo+offset]++
	}
}
