package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
)

// scanCmd discovers repositories and registers them.
var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Discover Git repositories under a path and register them.",
	Long: `Walk the given paths (default: the current directory) looking for Git
repositories and add every find to the registry.

The walk skips common dependency and build directories (.git internals,
node_modules, vendor and friends) plus anything named by --exclude, and it
stops descending once a directory turns out to be a repository, so nested
checkouts register once.

Already-registered repositories are left alone; scanning is idempotent.

Examples:
  # Register everything under the current directory
  streak scan

  # Register all repositories in your source tree
  streak scan ~/src

  # Scan several roots at once, skipping scratch checkouts
  streak scan ~/src ~/work --exclude scratch,tmp`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: pathArgsSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}
		if err := core.ExecuteScan(rootCtx, cfg, roots); err != nil {
			contract.LogFatal("Cannot scan for repositories", err)
		}
	},
}
