package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/streakhq/streak/schema"
)

// Color bands for calendar cells, one per contribution level. TodayColor
// overrides the level band for the current day regardless of its count.
var (
	NoneColor   = color.New(color.Faint)
	LowColor    = color.New(color.FgBlack, color.BgWhite)
	MediumColor = color.New(color.FgBlack, color.BgYellow)
	HighColor   = color.New(color.FgBlack, color.BgGreen)
	MaxColor    = color.New(color.FgBlack, color.BgHiGreen)
	TodayColor  = color.New(color.FgWhite, color.BgMagenta, color.Bold)
)

// PlainCell returns the three-character cell body for a contribution count.
// Zero renders as a dash placeholder, single digits are padded on both sides,
// and counts of 1000 or more overflow the field.
func PlainCell(count int) string {
	switch {
	case count == 0:
		return " - "
	case count > 0 && count < 10:
		return fmt.Sprintf(" %d ", count)
	default:
		return fmt.Sprintf("%3d", count)
	}
}

// ColorForLevel maps a contribution level to its console color band.
func ColorForLevel(level schema.Level) *color.Color {
	switch level {
	case schema.LevelLow:
		return LowColor
	case schema.LevelMedium:
		return MediumColor
	case schema.LevelHigh:
		return HighColor
	case schema.LevelMax:
		return MaxColor
	default:
		return NoneColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude patterns.
// It supports simple glob patterns (using filepath.Match) when the pattern
// contains wildcard characters (*, ?, [ ]). Patterns ending with '/' are treated
// as directory-name matches. Patterns starting with '.' are treated as suffix
// (extension) matches. A user can provide patterns like "archive/", "*.bak".
func ShouldIgnore(path string, excludes []string) bool {
	base := filepath.Base(path)
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		// If the pattern contains glob characters, try filepath.Match.
		if strings.ContainsAny(ex, "*?[") || strings.Contains(ex, "**") {
			pat := strings.ReplaceAll(ex, "**", "*")
			if ok, err := filepath.Match(pat, path); err == nil && ok {
				return true
			}
			// Also try matching against the base name (e.g. *.bak)
			if ok, err := filepath.Match(pat, base); err == nil && ok {
				return true
			}
			continue
		}

		// Handle directory, suffix, or substring matches
		switch {
		case strings.HasSuffix(ex, "/"):
			if base == strings.TrimSuffix(ex, "/") || strings.HasPrefix(path, ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case strings.Contains(path, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// GetRegistryFilePath returns the path to the repository registry file.
func GetRegistryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".streak_repos"
	}
	return filepath.Join(homeDir, ".streak_repos")
}

// GetCacheDBFilePath returns the path to the SQLite DB file for commit-log cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".streak_cache.db"
	}
	return filepath.Join(homeDir, ".streak_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".streak_history.db"
	}
	return filepath.Join(homeDir, ".streak_history.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
