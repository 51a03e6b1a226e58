package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/models"
	"github.com/akyairhashvil/tempo/internal/stats"
	"github.com/akyairhashvil/tempo/internal/storage"
)

// streakLookback bounds how much history feeds the streak counter.
const streakLookback = 365

// StatsModel is the focus dashboard: a seven-day bar chart, streak and
// completion rate, with PDF export.
type StatsModel struct {
	ctx  context.Context
	repo storage.Repository

	week   stats.WeekSummary
	streak int
	status string
	err    error
}

func newStatsModel(ctx context.Context, repo storage.Repository) StatsModel {
	m := StatsModel{ctx: ctx, repo: repo}
	m.Reload()
	return m
}

func (m *StatsModel) Reload() {
	today := time.Now()
	rows, err := m.repo.GetDayStats(m.ctx, today.AddDate(0, 0, -streakLookback), today)
	if err != nil {
		m.err = err
		return
	}
	m.week = stats.BuildWeek(rows, today)
	m.streak = stats.Streak(rows, today)
	m.err = nil
}

func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "r":
		m.Reload()
	case "e":
		path, err := GenerateWeeklyReport(m.ctx, m.repo, m.week, m.streak, time.Now())
		if err != nil {
			m.err = err
		} else {
			m.status = "Report written to " + path
		}
	}
	return m, nil
}

func (m StatsModel) View(width int) string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Stats"))
	b.WriteString("\n\n")

	maxFocus := 0
	for _, d := range m.week.Days {
		if d.FocusSeconds > maxFocus {
			maxFocus = d.FocusSeconds
		}
	}
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	for _, d := range m.week.Days {
		b.WriteString("  " + t.Item.Render(weekdayLabel(d.Date)) + "  ")
		b.WriteString(t.Highlight.Render(renderBar(d.FocusSeconds, maxFocus, barWidth)))
		if d.FocusSeconds > 0 {
			b.WriteString(" " + t.Dim.Render(FormatDuration(time.Duration(d.FocusSeconds)*time.Second)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", t.Item.Render("Week total:"),
		t.Highlight.Render(FormatDuration(m.week.TotalFocus))))
	b.WriteString(fmt.Sprintf("  %s %s\n", t.Item.Render("Sessions:  "),
		t.Highlight.Render(fmt.Sprintf("%d done of %d started", m.week.TotalDone, m.week.TotalStarted))))
	b.WriteString(fmt.Sprintf("  %s %s\n", t.Item.Render("Completion:"),
		t.Highlight.Render(fmt.Sprintf("%.0f%%", 100*stats.CompletionRate(m.week)))))
	b.WriteString(fmt.Sprintf("  %s %s\n", t.Item.Render("Streak:    "),
		t.Highlight.Render(fmt.Sprintf("%d day(s)", m.streak))))

	if m.status != "" {
		b.WriteString("\n  " + t.Dim.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n  " + t.Warn.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("  e export PDF  r refresh"))
	return b.String()
}

func weekdayLabel(date string) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "???"
	}
	return d.Format("Mon")
}

func renderBar(value, max, width int) string {
	if max == 0 || value == 0 {
		return ""
	}
	n := value * width / max
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// completedTasksSince is split out so the report generator shares it with
// tests.
func completedTasksSince(ctx context.Context, repo storage.TaskRepository, cutoff time.Time) []models.Task {
	tasks, err := repo.GetTasksCompletedSince(ctx, cutoff)
	if err != nil {
		return nil
	}
	return tasks
}
