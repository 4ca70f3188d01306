package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// PrintRepoStats outputs per-repository totals, dispatching based on the output format configured.
func PrintRepoStats(stats []schema.RepoStat, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStatsJSON(stats, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStatsCSV(stats, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for stats; use 'streak export'")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(stats, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeStatsTable generates and writes the human-readable table.
func writeStatsTable(stats []schema.RepoStat, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Repository", "Commits", "Last Commit"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	total := 0
	for i, stat := range stats {
		last := "-"
		if !stat.LastCommit.IsZero() {
			last = humanize.Time(stat.LastCommit)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(stat.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(stat.Commits),
			last,
		})
		total += stat.Commits
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d repositories, %d commits in the last six months. Cache backend: %s\n",
		len(stats), total, cfg.CacheBackend)
	return err
}

// writeStatsCSV handles opening the file and calling the CSV writer.
func writeStatsCSV(stats []schema.RepoStat, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "repository", "commits", "last_commit"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, stat := range stats {
				last := ""
				if !stat.LastCommit.IsZero() {
					last = stat.LastCommit.Format(contract.DateTimeFormat)
				}
				rec := []string{
					strconv.Itoa(i + 1),
					stat.Path,
					strconv.Itoa(stat.Commits),
					last,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeStatsJSON handles opening the file and calling the JSON writer.
func writeStatsJSON(stats []schema.RepoStat, cfg *contract.Config) error {
	type jsonRepoStat struct {
		Rank       int    `json:"rank"`
		Repository string `json:"repository"`
		Commits    int    `json:"commits"`
		LastCommit string `json:"last_commit,omitempty"`
	}

	output := make([]jsonRepoStat, len(stats))
	for i, stat := range stats {
		output[i] = jsonRepoStat{Rank: i + 1, Repository: stat.Path, Commits: stat.Commits}
		if !stat.LastCommit.IsZero() {
			output[i].LastCommit = stat.LastCommit.Format(contract.DateTimeFormat)
		}
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, output)
	}, "Wrote JSON")
}
