package core

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/outwriter"
	"github.com/streakhq/streak/internal/registry"
	"github.com/streakhq/streak/internal/scan"
	"github.com/streakhq/streak/schema"
)

// ExecuteScan walks the given roots for Git repositories and registers every
// find. It serves as the main entry point for the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config, roots []string) error {
	found, err := scan.FindRepos(ctx, roots, cfg.Excludes)
	if err != nil {
		return err
	}

	reg := registry.NewFileRegistry(cfg.RegistryPath)
	added, err := reg.Add(found)
	if err != nil {
		return err
	}

	if cfg.UseEmojis {
		fmt.Printf("🔎 Found %d repositories, %d new. Registry: %s\n", len(found), added, cfg.RegistryPath)
	} else {
		fmt.Printf("Found %d repositories, %d new. Registry: %s\n", len(found), added, cfg.RegistryPath)
	}
	return nil
}

// ExecuteReposList renders the registry as a table with per-repository
// liveness and last-commit age. It serves as the main entry point for the
// 'repos list' command.
func ExecuteReposList(ctx context.Context, cfg *contract.Config) error {
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

	listings := CollectRepoListings(ctx, client, repos)
	return outwriter.PrintRepoList(listings, cfg)
}

// CollectRepoListings probes each registered path for existence and its most
// recent commit. Probe failures degrade to a zero timestamp; a stale registry
// entry still gets a row.
func CollectRepoListings(ctx context.Context, client contract.GitClient, repos []string) []schema.RepoListing {
	listings := make([]schema.RepoListing, 0, len(repos))
	for _, repoPath := range repos {
		listing := schema.RepoListing{Path: repoPath}
		if info, err := os.Stat(repoPath); err == nil && info.IsDir() {
			listing.Exists = true
			listing.LastCommit = lastCommitTime(ctx, client, repoPath)
		}
		listings = append(listings, listing)
	}
	return listings
}

// lastCommitTime asks git for the newest commit timestamp in the repository,
// by any author. Missing or empty repositories yield the zero time.
func lastCommitTime(ctx context.Context, client contract.GitClient, repoPath string) time.Time {
	out, err := client.Run(ctx, repoPath, "log", "-1", "--format=%ct")
	if err != nil {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}

// ExecuteReposAdd registers the given paths, skipping known ones.
func ExecuteReposAdd(cfg *contract.Config, paths []string) error {
	reg := registry.NewFileRegistry(cfg.RegistryPath)
	added, err := reg.Add(paths)
	if err != nil {
		return err
	}
	fmt.Printf("Added %d repositories to %s\n", added, cfg.RegistryPath)
	return nil
}

// ExecuteReposRemove drops the given paths from the registry.
func ExecuteReposRemove(cfg *contract.Config, paths []string) error {
	reg := registry.NewFileRegistry(cfg.RegistryPath)
	removed, err := reg.Remove(paths)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d repositories from %s\n", removed, cfg.RegistryPath)
	return nil
}
