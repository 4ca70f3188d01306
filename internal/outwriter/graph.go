// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// Grid geometry. Rows are a 5-column day gutter plus one 4-column cell per
// week, oldest week on the left; the month header leads with 9 blanks to
// cover the gutter and the extra leading column.
const (
	leadWeek    = schema.WeeksInWindow + 1
	headerLead  = "         "
	gutterBlank = "     "
)

// RenderGraph writes the month header, the seven weekday rows, a legend and
// the running total to sink. It reads the snapshot and never mutates it;
// rendering the same snapshot twice produces byte-identical output.
func RenderGraph(sink io.Writer, cfg *contract.Config, data *schema.GraphData) error {
	if _, err := fmt.Fprintln(sink, monthHeader(data.Now)); err != nil {
		return err
	}
	for row := 6; row >= 0; row-- {
		if _, err := fmt.Fprintln(sink, gridRow(cfg, data, row)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(sink, "\n%s\n", legend(cfg)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(sink, "Total: %d contributions in the last six months\n", data.Total)
	return err
}

// monthHeader walks the window in week strides and prints an abbreviated
// month label the first time a stride crosses into a new month. The first
// stride's own month is never labeled; it seeds the comparison.
func monthHeader(now time.Time) string {
	var b strings.Builder
	b.WriteString(headerLead)

	week := now.Add(-schema.DaysInWindow * 24 * time.Hour)
	month := week.Month()
	for {
		if week.Month() != month {
			b.WriteString(week.Month().String()[:3] + " ")
			month = week.Month()
		} else {
			b.WriteString("    ")
		}
		week = week.Add(7 * 24 * time.Hour)
		if week.After(now) {
			break
		}
	}

	return b.String()
}

// gridRow renders one weekday row across every week column, most distant
// week first, so the current partial week lands in the rightmost cell.
func gridRow(cfg *contract.Config, data *schema.GraphData, row int) string {
	var b strings.Builder
	b.WriteString(dayLabel(row))
	for week := leadWeek; week >= 0; week-- {
		b.WriteString(cell(cfg, data, week, row))
	}
	return b.String()
}

// dayLabel returns the 5-column gutter text for a row. The label positions
// are a fixed presentational convention of the calendar.
func dayLabel(row int) string {
	switch row {
	case 1:
		return " Mon "
	case 3:
		return " Wed "
	case 5:
		return " Fri "
	}
	return gutterBlank
}

// cell renders the 4-column cell for one week and row. Absent weeks and rows
// past a committed column's length render as zero cells. The today cell sits
// at week 0, row offset-1, and keeps its highlight even when the shortened
// week-zero column has no entry for that row.
func cell(cfg *contract.Config, data *schema.GraphData, week, row int) string {
	count := 0
	if col, ok := data.Weeks[week]; ok && row < len(col) {
		count = col[row]
	}
	if week == 0 && row == data.Offset-1 {
		return paintCell(cfg, count, contract.TodayColor)
	}
	return paintCell(cfg, count, contract.ColorForLevel(schema.LevelForCount(count)))
}

// paintCell styles the 3-column cell body and appends the plain spacer.
func paintCell(cfg *contract.Config, count int, c *color.Color) string {
	body := contract.PlainCell(count)
	if !cfg.UseColors {
		return body + " "
	}
	return c.Sprint(body) + " "
}

// legend renders the fixed five-swatch scale, one representative count per
// intensity band.
func legend(cfg *contract.Config) string {
	var b strings.Builder
	b.WriteString(" Less ")
	for _, count := range schema.LegendCounts {
		b.WriteString(paintCell(cfg, count, contract.ColorForLevel(schema.LevelForCount(count))))
	}
	b.WriteString("More")
	return b.String()
}
