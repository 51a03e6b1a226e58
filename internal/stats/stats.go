// Package stats derives dashboard figures from recorded focus sessions.
package stats

import (
	"time"

	"github.com/akyairhashvil/tempo/internal/models"
)

const dayKey = "2006-01-02"

// WeekSummary holds the last seven days of focus work, oldest first.
// Days without sessions appear with zero counts so the dashboard can
// render a fixed-width bar chart.
type WeekSummary struct {
	Days         []models.DayStats
	TotalFocus   time.Duration
	TotalDone    int
	TotalStarted int
	BestDay      string // YYYY-MM-DD, empty when the week is blank
}

// BuildWeek expands sparse per-day rows into a dense seven-day window
// ending on today. Rows outside the window are ignored.
func BuildWeek(rows []models.DayStats, today time.Time) WeekSummary {
	byDay := make(map[string]models.DayStats, len(rows))
	for _, r := range rows {
		byDay[r.Date] = r
	}

	var sum WeekSummary
	best := 0
	for i := 6; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dayKey)
		d, ok := byDay[key]
		if !ok {
			d = models.DayStats{Date: key}
		}
		sum.Days = append(sum.Days, d)
		sum.TotalFocus += time.Duration(d.FocusSeconds) * time.Second
		sum.TotalDone += d.Completed
		sum.TotalStarted += d.Sessions
		if d.FocusSeconds > best {
			best = d.FocusSeconds
			sum.BestDay = d.Date
		}
	}
	return sum
}

// Streak counts consecutive days ending today (or yesterday, if today has
// no sessions yet) with at least one completed session. A gap breaks it.
func Streak(rows []models.DayStats, today time.Time) int {
	done := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.Completed > 0 {
			done[r.Date] = true
		}
	}

	day := today
	if !done[day.Format(dayKey)] {
		// Today does not count against the streak until it is over.
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for done[day.Format(dayKey)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CompletionRate returns the share of started sessions that ran to zero,
// in [0, 1]. A week with no sessions rates as zero.
func CompletionRate(sum WeekSummary) float64 {
	if sum.TotalStarted == 0 {
		return 0
	}
	return float64(sum.TotalDone) / float64(sum.TotalStarted)
}
