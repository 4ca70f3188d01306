package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/streakhq/streak/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its standard output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// CommitLog implements the GitClient interface. Each output line is
// "email|author-date"; lines that do not split into an email and an
// RFC 3339 timestamp are skipped rather than failing the whole log.
func (c *LocalGitClient) CommitLog(ctx context.Context, repoPath string, since time.Time) ([]schema.CommitEvent, error) {
	args := []string{
		"log",
		"--no-merges",
		"--pretty=format:%ae|%aI",
	}
	if !since.IsZero() {
		args = append(args, fmt.Sprintf("--since=%s", since.Format(DateTimeFormat)))
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}

	var events []schema.CommitEvent
	lines := strings.SplitSeq(strings.TrimSpace(string(out)), "\n")
	for line := range lines {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		when, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		events = append(events, schema.CommitEvent{
			Email: strings.TrimSpace(parts[0]),
			When:  when,
		})
	}
	return events, nil
}

// RepoHash implements the GitClient interface.
func (c *LocalGitClient) RepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ConfiguredEmail implements the GitClient interface.
func (c *LocalGitClient) ConfiguredEmail(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "config", "--get", "user.email")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
