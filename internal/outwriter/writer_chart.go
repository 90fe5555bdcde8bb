package outwriter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/montanaflynn/stats"
)

const (
	chartBarWidth = 40 // Widest bar drawn, used for the peak day
	maxChartDays  = 14 // Most recent days drawn when the window is longer
)

// chartDay pairs a calendar day with its commit count.
type chartDay struct {
	label string
	count int
}

// chartSeries enumerates every day of the window ending at now, oldest first,
// with zero counts for days that saw no commits.
func chartSeries(daily schema.DailyActivity, days int, now time.Time) []chartDay {
	series := make([]chartDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := schema.DayKey(now.AddDate(0, 0, -i))
		series = append(series, chartDay{label: day, count: daily[day]})
	}
	return series
}

// barLength scales a day's count against the peak so the busiest day fills
// chartBarWidth cells. Any nonzero count draws at least one cell.
func barLength(count, peak int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	return max(count*chartBarWidth/peak, 1)
}

// buildActivityChart renders the per-day horizontal bar chart as one string.
// Bars are scaled against the peak day of the whole window, so a trimmed
// view keeps its proportions.
func buildActivityChart(result *schema.ScanResult, cfg *contract.Config) string {
	if len(result.DailyActivity) == 0 {
		return "  No activity data available.\n"
	}

	series := chartSeries(result.DailyActivity, result.WindowDays, time.Now())

	peak := 0
	values := make([]float64, len(series))
	for i, day := range series {
		peak = max(peak, day.count)
		values[i] = float64(day.count)
	}
	if peak == 0 {
		return "  No commits in this period.\n"
	}

	display := series
	trimmed := false
	if len(display) > maxChartDays {
		display = display[len(display)-maxChartDays:]
		trimmed = true
	}

	var sb strings.Builder
	for _, day := range display {
		length := barLength(day.count, peak)
		bar := strings.Repeat("█", length)
		if cfg.UseColors {
			bar = contract.GetIntensityColor(day.count, peak).Sprint(bar)
		}
		// Pad manually since color escape codes would break %-*s widths.
		pad := strings.Repeat(" ", chartBarWidth-length+1)
		fmt.Fprintf(&sb, "  %s │%s%s%3d\n", day.label, bar, pad, day.count)
	}

	if mean, err := stats.Mean(values); err == nil {
		fmt.Fprintf(&sb, "  Mean %.1f commits/day, peak %d\n", mean, peak)
	}
	if trimmed {
		fmt.Fprintf(&sb, "  Showing last %d of %d days\n", maxChartDays, len(series))
	}
	return sb.String()
}
