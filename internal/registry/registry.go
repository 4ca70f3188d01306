// Package registry persists the ordered list of repositories to aggregate.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/streakhq/streak/internal/contract"
)

// FileRegistry stores repository paths one per line in a plain text file.
// Registration order is preserved; the file may be hand-edited and supports
// blank lines and '#' comments.
type FileRegistry struct {
	path string
}

var _ contract.RepoRegistry = &FileRegistry{} // Compile-time check

// NewFileRegistry creates a registry backed by the given file path.
func NewFileRegistry(path string) *FileRegistry {
	return &FileRegistry{path: path}
}

// List returns every registered path in registration order. A missing
// registry file reads as an empty registry.
func (r *FileRegistry) List() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", r.path, err)
	}

	var paths []string
	lines := strings.SplitSeq(string(data), "\n")
	for line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// Add registers the given paths after normalizing them to absolute form,
// skipping ones already present, and returns how many were newly added.
func (r *FileRegistry) Add(paths []string) (int, error) {
	existing, err := r.List()
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p] = struct{}{}
	}

	merged := existing
	added := 0
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return added, err
		}
		abs = filepath.Clean(abs)
		if _, ok := known[abs]; ok {
			continue
		}
		known[abs] = struct{}{}
		merged = append(merged, abs)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, r.write(merged)
}

// Remove deregisters the given paths and returns how many were removed.
// Paths not present are ignored.
func (r *FileRegistry) Remove(paths []string) (int, error) {
	existing, err := r.List()
	if err != nil {
		return 0, err
	}

	drop := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return 0, err
		}
		drop[filepath.Clean(abs)] = struct{}{}
	}

	var kept []string
	removed := 0
	for _, p := range existing {
		if _, ok := drop[p]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}

	if removed == 0 {
		return 0, nil
	}
	return removed, r.write(kept)
}

func (r *FileRegistry) write(paths []string) error {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write registry %s: %w", r.path, err)
	}
	return nil
}
