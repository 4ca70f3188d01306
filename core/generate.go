// Package core has core logic for contribution aggregation and calendar layout.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/outwriter"
	"github.com/streakhq/streak/internal/registry"
	"github.com/streakhq/streak/schema"
)

// noRepositoriesMessage is printed whenever a command needs a registry and
// finds none. It doubles as the hint for getting started.
const noRepositoriesMessage = "No repositories registered. Run 'streak scan <path>' or 'streak repos add <path>' first."

// ExecuteGraph renders the contribution calendar to stdout.
// It serves as the main entry point for the 'graph' command.
func ExecuteGraph(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	client := contract.NewLocalGitClient()
	reg := registry.NewFileRegistry(cfg.RegistryPath)

	sink, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if sink == os.Stdout {
		outwriter.WarnIfNarrow(cfg)
	} else {
		defer func() { _ = sink.Close() }()
	}
	return Generate(ctx, cfg, client, reg, mgr, sink)
}

// ExecuteStats prints per-repository totals for the current window.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	client := contract.NewLocalGitClient()
	reg := registry.NewFileRegistry(cfg.RegistryPath)

	repos, err := reg.List()
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		fmt.Println(noRepositoriesMessage)
		return nil
	}

	runID, history := beginRunTracking(mgr, cfg.Email, len(repos))
	stats := CollectRepoStats(ctx, cfg, client, mgr, repos, time.Now())
	total := 0
	for _, stat := range stats {
		total += stat.Commits
	}
	endRunTracking(history, runID, total)

	return outwriter.PrintRepoStats(stats, cfg)
}

// ExecuteExport writes the per-day breakdown in the configured output format.
// It serves as the main entry point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	client := contract.NewLocalGitClient()
	reg := registry.NewFileRegistry(cfg.RegistryPath)

	data, err := BuildGraphData(ctx, cfg, client, reg, mgr, time.Now())
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Println(noRepositoriesMessage)
		return nil
	}
	return outwriter.PrintDays(DayBreakdown(data), data, cfg)
}

// Generate aggregates contributions for cfg.Email and writes the rendered
// calendar, legend and total line to sink. An empty registry or a window
// without a single matching commit writes one informational line instead.
func Generate(ctx context.Context, cfg *contract.Config, client contract.GitClient, reg contract.RepoRegistry, mgr contract.CacheManager, sink io.Writer) error {
	data, err := BuildGraphData(ctx, cfg, client, reg, mgr, time.Now())
	if err != nil {
		return err
	}
	if data == nil {
		_, err := fmt.Fprintln(sink, noRepositoriesMessage)
		return err
	}
	if data.Total == 0 {
		_, err := fmt.Fprintf(sink, "No contributions found for %s in the last six months.\n", data.Email)
		return err
	}
	return outwriter.RenderGraph(sink, cfg, data)
}

// BuildGraphData runs the aggregation pipeline and returns the snapshot the
// renderer and the exporters consume, or nil when the registry is empty.
// Run tracking, when configured, brackets the aggregation.
func BuildGraphData(ctx context.Context, cfg *contract.Config, client contract.GitClient, reg contract.RepoRegistry, mgr contract.CacheManager, now time.Time) (*schema.GraphData, error) {
	repos, err := reg.List()
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, nil
	}

	runID, history := beginRunTracking(mgr, cfg.Email, len(repos))

	contributions := AggregateContributions(ctx, cfg, client, mgr, repos, now)

	data := &schema.GraphData{
		Email:  cfg.Email,
		Now:    now,
		Offset: WeekOffset(now),
		Days:   contributions,
		Weeks:  BuildColumns(SortKeys(contributions), contributions),
		Total:  contributions.Total(),
	}

	endRunTracking(history, runID, data.Total)
	return data, nil
}

// DayBreakdown flattens the aggregated map into dated day records, oldest
// first. Seeded keys below the week offset describe days that have not
// happened yet and are dropped.
func DayBreakdown(data *schema.GraphData) []schema.DayContribution {
	keys := SortKeys(data.Days)
	days := make([]schema.DayContribution, 0, len(keys))
	today := BeginningOfDay(data.Now)

	for i := len(keys) - 1; i >= 0; i-- {
		daysAgo := keys[i] - data.Offset
		if daysAgo < 0 || daysAgo > schema.DaysInWindow {
			continue
		}
		count := data.Days[keys[i]]
		days = append(days, schema.DayContribution{
			Date:  today.AddDate(0, 0, -daysAgo),
			Count: count,
			Level: schema.LevelForCount(count),
		})
	}

	return days
}

// beginRunTracking opens a history record when a run store is configured.
// Tracking failures are reported and tolerated; they never stop a run.
func beginRunTracking(mgr contract.CacheManager, email string, repoCount int) (int64, contract.HistoryStore) {
	if mgr == nil {
		return 0, nil
	}
	history := mgr.GetRunStore()
	if history == nil {
		return 0, nil
	}
	runID, err := history.BeginRun(time.Now(), email, repoCount)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0, nil
	}
	return runID, history
}

// endRunTracking completes the record opened by beginRunTracking.
func endRunTracking(history contract.HistoryStore, runID int64, total int) {
	if history == nil || runID <= 0 {
		return
	}
	if err := history.EndRun(runID, time.Now(), total); err != nil {
		contract.LogWarn("Run tracking completion failed", err)
	}
}
