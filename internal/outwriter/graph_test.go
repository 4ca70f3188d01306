package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// anchor is a Tuesday, so the week offset is 5 and the today cell sits on
// row 4 of the rightmost column.
var anchor = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

// zeroWeeks mirrors the grid a seeded, contribution-free window commits:
// week 0 holds six entries, weeks 1 through 25 hold seven, and the oldest
// partial week never commits.
func zeroWeeks() schema.CalendarGrid {
	grid := schema.CalendarGrid{0: make(schema.WeekColumn, 6)}
	for week := 1; week < schema.WeeksInWindow; week++ {
		grid[week] = make(schema.WeekColumn, 7)
	}
	return grid
}

func plainConfig() *contract.Config {
	return &contract.Config{
		Email:     "dev@example.com",
		Output:    schema.TextOut,
		UseColors: false,
		UseEmojis: false,
	}
}

func TestRenderGraph_Golden(t *testing.T) {
	data := &schema.GraphData{
		Email:  "dev@example.com",
		Now:    anchor,
		Offset: 5,
		Weeks:  zeroWeeks(),
		Total:  0,
	}

	var buf bytes.Buffer
	err := RenderGraph(&buf, plainConfig(), data)
	require.NoError(t, err)

	// The window behind the anchor opens on Feb 23, so the header labels
	// Mar through Aug, one stride per week, 27 strides in total.
	header := headerLead +
		"    " + "Mar " +
		strings.Repeat("    ", 4) + "Apr " +
		strings.Repeat("    ", 3) + "May " +
		strings.Repeat("    ", 3) + "Jun " +
		strings.Repeat("    ", 4) + "Jul " +
		strings.Repeat("    ", 3) + "Aug " +
		strings.Repeat("    ", 3)
	blankRow := gutterBlank + strings.Repeat(" -  ", leadWeek+1)

	expected := strings.Join([]string{
		header,
		blankRow,
		" Fri " + strings.Repeat(" -  ", leadWeek+1),
		blankRow,
		" Wed " + strings.Repeat(" -  ", leadWeek+1),
		blankRow,
		" Mon " + strings.Repeat(" -  ", leadWeek+1),
		blankRow,
		"",
		" Less  -   1   4   7   10 More",
		"Total: 0 contributions in the last six months",
		"",
	}, "\n")

	assert.Equal(t, expected, buf.String())
}

func TestRenderGraph_Deterministic(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	weeks := zeroWeeks()
	weeks[0][4] = 2
	weeks[12][3] = 11
	data := &schema.GraphData{
		Email:  "dev@example.com",
		Now:    anchor,
		Offset: 5,
		Weeks:  weeks,
		Total:  13,
	}
	cfg := plainConfig()
	cfg.UseColors = true

	var first, second bytes.Buffer
	require.NoError(t, RenderGraph(&first, cfg, data))
	require.NoError(t, RenderGraph(&second, cfg, data))

	assert.Equal(t, first.String(), second.String())
}

func TestRenderGraph_TodayHighlight(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	weeks := zeroWeeks()
	weeks[0][4] = 1
	data := &schema.GraphData{
		Email:  "dev@example.com",
		Now:    anchor,
		Offset: 5,
		Weeks:  weeks,
		Total:  1,
	}
	cfg := plainConfig()
	cfg.UseColors = true

	var buf bytes.Buffer
	require.NoError(t, RenderGraph(&buf, cfg, data))
	out := buf.String()

	// Today gets the magenta highlight, zero cells stay faint.
	assert.Contains(t, out, "\x1b[37;45;1m 1 \x1b[0m")
	assert.Contains(t, out, "\x1b[2m - \x1b[0m")
	assert.Contains(t, out, "Total: 1 contributions in the last six months")
}

func TestRenderGraph_RowWidths(t *testing.T) {
	data := &schema.GraphData{
		Email:  "dev@example.com",
		Now:    anchor,
		Offset: 5,
		Weeks:  zeroWeeks(),
		Total:  0,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderGraph(&buf, plainConfig(), data))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	for i := 0; i < 8; i++ {
		assert.Len(t, lines[i], GraphWidth, "line %d should span the full graph width", i)
	}
}

func TestMonthHeader(t *testing.T) {
	header := monthHeader(anchor)

	assert.Len(t, header, GraphWidth)
	assert.True(t, strings.HasPrefix(header, headerLead))
	// The first stride seeds the month comparison and is never labeled.
	assert.Equal(t, "    ", header[len(headerLead):len(headerLead)+4])
	for _, label := range []string{"Mar ", "Apr ", "May ", "Jun ", "Jul ", "Aug "} {
		assert.Contains(t, header, label)
	}
	assert.NotContains(t, header, "Feb")
}

func TestMonthHeader_WidthStableAcrossAnchors(t *testing.T) {
	anchors := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 6, 30, 0, 0, time.UTC),
	}
	for _, now := range anchors {
		assert.Len(t, monthHeader(now), GraphWidth, "anchor %s", now.Format(time.DateOnly))
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		row      int
		expected string
	}{
		{0, gutterBlank},
		{1, " Mon "},
		{2, gutterBlank},
		{3, " Wed "},
		{4, gutterBlank},
		{5, " Fri "},
		{6, gutterBlank},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, dayLabel(tt.row), "row %d", tt.row)
	}
}

func TestCell_PlainBodies(t *testing.T) {
	cfg := plainConfig()
	data := &schema.GraphData{
		Now:    anchor,
		Offset: 5,
		Weeks: schema.CalendarGrid{
			3: schema.WeekColumn{12, 123, 5},
		},
	}

	tests := []struct {
		name     string
		week     int
		row      int
		expected string
	}{
		{"absent week renders zero", 27, 2, " -  "},
		{"row past column length renders zero", 3, 5, " -  "},
		{"single digit is padded", 3, 2, " 5  "},
		{"double digit fills the body", 3, 0, " 12 "},
		{"triple digit overflows into the spacer gap", 3, 1, "123 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cell(cfg, data, tt.week, tt.row))
		})
	}
}

func TestCell_TodayKeepsHighlightPastColumnEnd(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	cfg := plainConfig()
	cfg.UseColors = true

	// Sunday anchor: offset 7 puts today on row 6, one past the six
	// entries week zero holds.
	data := &schema.GraphData{
		Now:    time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		Offset: 7,
		Weeks:  schema.CalendarGrid{0: make(schema.WeekColumn, 6)},
	}

	assert.Equal(t, "\x1b[37;45;1m - \x1b[0m ", cell(cfg, data, 0, 6))
}

func TestGridRow_PlacesCountsByWeek(t *testing.T) {
	cfg := plainConfig()
	weeks := zeroWeeks()
	weeks[25][6] = 7
	data := &schema.GraphData{
		Now:    anchor,
		Offset: 5,
		Weeks:  weeks,
	}

	row := gridRow(cfg, data, 6)
	require.Len(t, row, GraphWidth)
	// Cells run oldest week first: week 27, 26, then 25.
	assert.Equal(t, " 7  ", row[5+2*4:5+3*4])
}

func TestLegend_NoColors(t *testing.T) {
	assert.Equal(t, " Less  -   1   4   7   10 More", legend(plainConfig()))
}

func TestLegend_SwatchPerBand(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	cfg := plainConfig()
	cfg.UseColors = true
	out := legend(cfg)

	// One escape sequence per band, none highlighted as today.
	assert.Equal(t, len(schema.LegendCounts), strings.Count(out, "\x1b[0m"))
	assert.NotContains(t, out, "\x1b[37;45;1m")
}
