// Package scan discovers git repositories beneath a set of root directories.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/streakhq/streak/internal/contract"
)

// FindRepos walks each root iteratively and returns every directory carrying
// a .git marker, in breadth-first order per root. A discovered repository is
// never descended into, so nested checkouts inside one are not reported.
// Directories matching the exclude patterns, hidden directories, and symlinks
// are skipped. Unreadable subdirectories are skipped rather than failing the
// scan; an unusable root is an error.
func FindRepos(ctx context.Context, roots []string, excludes []string) ([]string, error) {
	var repos []string
	seen := make(map[string]struct{})

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		absRoot = filepath.Clean(absRoot)

		info, err := os.Stat(absRoot)
		if err != nil {
			return nil, fmt.Errorf("scan root %q: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("scan root %q is not a directory", root)
		}

		queue := []string{absRoot}
		for len(queue) > 0 {
			// Cancellation takes effect between directories, never inside one
			select {
			case <-ctx.Done():
				return repos, ctx.Err()
			default:
			}

			dir := queue[0]
			queue = queue[1:]

			if isRepoRoot(dir) {
				if _, dup := seen[dir]; !dup {
					seen[dir] = struct{}{}
					repos = append(repos, dir)
				}
				continue
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				name := entry.Name()
				if strings.HasPrefix(name, ".") {
					continue
				}
				child := filepath.Join(dir, name)
				rel, err := filepath.Rel(absRoot, child)
				if err != nil {
					rel = name
				}
				if contract.ShouldIgnore(filepath.ToSlash(rel), excludes) {
					continue
				}
				queue = append(queue, child)
			}
		}
	}
	return repos, nil
}

// isRepoRoot reports whether dir carries a .git marker. The marker may be a
// directory or, for worktrees and submodules, a plain file.
func isRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
