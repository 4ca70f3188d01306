package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
)

// statsCmd prints per-repository contribution totals.
var statsCmd = &cobra.Command{
	Use:   "stats [email]",
	Short: "Show per-repository commit totals for the last six months.",
	Long: `Break the six-month contribution window down by repository.

Each registered repository gets a row with its matching commit count and the
age of the author's most recent commit there. Rows are ranked by commit
count, busiest repository first.

Examples:
  # Totals for your configured git email
  streak stats

  # Totals for a teammate
  streak stats teammate@example.com

  # Machine-readable output
  streak stats --output csv --output-file stats.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot compute repository stats", err)
		}
	},
}
