package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
)

// exportCmd writes the per-day contribution breakdown.
var exportCmd = &cobra.Command{
	Use:   "export [email]",
	Short: "Export per-day contribution counts as JSON, CSV or Parquet.",
	Long: `Export one record per calendar day in the six-month window: date, commit
count and contribution level. The format follows --output.

Days are ordered oldest first. JSON carries an envelope with the email and
total; CSV uses the header 'date,count,level'; Parquet is suitable for
DuckDB, pandas and Spark.

Examples:
  # JSON to stdout
  streak export --output json

  # CSV for spreadsheets
  streak export --output csv --output-file days.csv

  # Parquet for analytics
  streak export --output parquet --output-file days.parquet
  duckdb -c "SELECT * FROM read_parquet('days.parquet') ORDER BY count DESC LIMIT 10"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot export contributions", err)
		}
	},
}
