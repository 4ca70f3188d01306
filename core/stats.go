package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// CollectRepoStats reports each repository's share of the current window:
// matching commit count and most recent matching commit. Repositories with
// zero matches still appear so the table reflects the whole registry, and
// unreadable repositories are skipped with a warning. Results are ordered
// by commit count, busiest first.
func CollectRepoStats(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, repos []string, now time.Time) []schema.RepoStat {
	since := BeginningOfDay(now).AddDate(0, 0, -schema.DaysInWindow)
	stats := make([]schema.RepoStat, 0, len(repos))

	for _, repoPath := range repos {
		select {
		case <-ctx.Done():
			return stats
		default:
		}

		events, err := cachedCommitLog(ctx, client, mgr, repoPath, since)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping %s", repoPath), err)
			continue
		}

		stat := schema.RepoStat{Path: repoPath}
		for _, event := range events {
			if event.Email != cfg.Email {
				continue
			}
			if DaysSince(now, event.When) == schema.OutOfRange {
				continue
			}
			stat.Commits++
			if event.When.After(stat.LastCommit) {
				stat.LastCommit = event.When
			}
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Commits != stats[j].Commits {
			return stats[i].Commits > stats[j].Commits
		}
		return stats[i].Path < stats[j].Path
	})

	return stats
}
