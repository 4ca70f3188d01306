package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// PrintRepoList outputs the registry table for the 'repos list' command.
func PrintRepoList(listings []schema.RepoListing, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeRepoListTable(listings, cfg, w)
	}, "Wrote table")
}

// writeRepoListTable generates and writes the human-readable registry table.
func writeRepoListTable(listings []schema.RepoListing, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Repository", "Exists", "Last Commit"})

	var data [][]string
	missing := 0
	for i, listing := range listings {
		exists := "yes"
		if !listing.Exists {
			exists = "no"
			missing++
		}
		last := "-"
		if !listing.LastCommit.IsZero() {
			last = humanize.Time(listing.LastCommit)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(listing.Path, getMaxTablePathWidth(cfg)),
			exists,
			last,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d repositories registered", len(listings))
	if missing > 0 {
		summary += fmt.Sprintf(", %d missing on disk", missing)
	}
	_, err := fmt.Fprintf(writer, "%s. Registry: %s\n", summary, cfg.RegistryPath)
	return err
}
