package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/parquet"
	"github.com/streakhq/streak/schema"
)

// PrintDays writes the per-day contribution breakdown, dispatching based on the output format configured.
func PrintDays(days []schema.DayContribution, data *schema.GraphData, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeDaysJSON(days, data, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeDaysCSV(days, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeDaysParquet(days, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDaysTable(days, data, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeDaysTable generates and writes the human-readable table.
func writeDaysTable(days []schema.DayContribution, data *schema.GraphData, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Date", "Count", "Level"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for _, day := range days {
		rows = append(rows, []string{
			day.Date.Format(time.DateOnly),
			strconv.Itoa(day.Count),
			string(day.Level),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Total: %d contributions in the last six months for %s\n",
		data.Total, data.Email)
	return err
}

// writeDaysCSV handles opening the file and calling the CSV writer.
func writeDaysCSV(days []schema.DayContribution, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"date", "count", "level"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, day := range days {
				rec := []string{
					day.Date.Format(time.DateOnly),
					strconv.Itoa(day.Count),
					string(day.Level),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeDaysJSON handles opening the file and calling the JSON writer.
func writeDaysJSON(days []schema.DayContribution, data *schema.GraphData, cfg *contract.Config) error {
	type jsonDayExport struct {
		Email string                   `json:"email"`
		Total int                      `json:"total"`
		Days  []schema.DayContribution `json:"days"`
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, jsonDayExport{Email: data.Email, Total: data.Total, Days: days})
	}, "Wrote JSON")
}

// writeDaysParquet converts the breakdown and writes a Parquet file. The
// Parquet writer needs a seekable file, so stdout is not an option here.
func writeDaysParquet(days []schema.DayContribution, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	if err := parquet.WriteDaysParquet(parquet.ConvertDayContributions(days), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
