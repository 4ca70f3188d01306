package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
)

// graphCmd renders the contribution calendar.
var graphCmd = &cobra.Command{
	Use:   "graph [email]",
	Short: "Render the contribution calendar for the last six months.",
	Long: `Aggregate commits by the given author across every registered repository
and draw them as a GitHub-style contribution calendar.

The calendar covers the last six months, one column per week, Sunday on top.
Cell colors follow the contribution level bands and today's cell is
highlighted. A total line and a color legend follow the grid.

The author email resolves in order: positional argument, --email flag or
config file, then 'git config user.email'.

Examples:
  # Graph for your configured git email
  streak graph

  # Graph for a specific author
  streak graph teammate@example.com

  # Plain ASCII output for terminals without color support
  streak graph --color no --emoji no

  # Write the rendered calendar to a file
  streak graph --output-file calendar.txt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGraph(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot render contribution graph", err)
		}
	},
}
