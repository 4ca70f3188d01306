package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
)

// reposCmd groups registry management subcommands.
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Manage the repository registry",
	Long: `Manage the list of repositories that contribute to your calendar.

The registry is a plain text file (one absolute path per line, default
~/.streak_repos) that graph, stats and export read on every run. Populate it
with 'streak scan' or curate it by hand with the add/remove subcommands.

Subcommands:
  list   - Show registered repositories with liveness and last-commit age
  add    - Register one or more repository paths
  remove - Drop one or more paths from the registry

Examples:
  # See what is registered
  streak repos list

  # Register a repository that scan missed
  streak repos add ~/src/dotfiles

  # Drop a deleted checkout
  streak repos remove ~/src/old-project`,
}

// reposListCmd renders the registry as a table.
var reposListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show registered repositories with liveness and last-commit age",
	Long: `List every registered repository with whether its path still exists on
disk and how long ago anyone committed to it.

Stale rows (Exists: no) usually mean a checkout was moved or deleted; clean
them up with 'streak repos remove'.

Examples:
  # Show the registry
  streak repos list`,
	PreRunE: pathArgsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReposList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list repositories", err)
		}
	},
}

// reposAddCmd registers paths directly.
var reposAddCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Register one or more repository paths",
	Long: `Add the given paths to the registry. Paths are normalized to absolute
form and deduplicated; adding a known path is a no-op.

Examples:
  # Register a single repository
  streak repos add ~/src/dotfiles

  # Register several at once
  streak repos add ~/src/app ~/src/lib`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: pathArgsSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteReposAdd(cfg, args); err != nil {
			contract.LogFatal("Cannot add repositories", err)
		}
	},
}

// reposRemoveCmd drops paths from the registry.
var reposRemoveCmd = &cobra.Command{
	Use:   "remove <path>...",
	Short: "Drop one or more paths from the registry",
	Long: `Remove the given paths from the registry. The repositories themselves
are untouched; they just stop contributing to the calendar.

Examples:
  # Drop a deleted checkout
  streak repos remove ~/src/old-project`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: pathArgsSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteReposRemove(cfg, args); err != nil {
			contract.LogFatal("Cannot remove repositories", err)
		}
	},
}
