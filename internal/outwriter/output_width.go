package outwriter

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/streakhq/streak/internal/contract"
)

// GraphWidth is the fixed rendered width of the calendar: the 5-column day
// gutter plus one 4-column cell per week including the leading blank column.
const GraphWidth = 5 + (leadWeek+1)*4

// TerminalWidth returns the usable terminal width. An explicit --width
// override wins; otherwise the terminal is probed.
func TerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return width
}

// WarnIfNarrow advises on stderr when the calendar will not fit the
// terminal. The graph still renders; wrapped rows beat silence.
func WarnIfNarrow(cfg *contract.Config) {
	if TerminalWidth(cfg) >= GraphWidth {
		return
	}
	if cfg.UseEmojis {
		fmt.Fprintf(os.Stderr, "⚠️  Terminal is narrower than the %d-column calendar; rows may wrap\n", GraphWidth)
	} else {
		fmt.Fprintf(os.Stderr, "Terminal is narrower than the %d-column calendar; rows may wrap\n", GraphWidth)
	}
}

// getMaxTablePathWidth bounds repository paths in table output based on the
// terminal width, reserving room for the fixed numeric columns.
func getMaxTablePathWidth(cfg *contract.Config) int {
	// Rank, Commits and Last Commit columns with borders and padding
	available := TerminalWidth(cfg) - 40
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 70 {
		// Maximum path width to prevent overly long paths
		return 70
	}
	return available
}
