package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/models"
	"github.com/akyairhashvil/tempo/internal/storage"
)

// CalendarModel shows a month of focus history with task due dates.
type CalendarModel struct {
	ctx      context.Context
	repo     storage.Repository
	selected time.Time // always a date at midnight local

	focus map[string]int // day -> focus seconds
	due   map[string][]models.Task
	err   error
}

func newCalendarModel(ctx context.Context, repo storage.Repository) CalendarModel {
	now := time.Now()
	m := CalendarModel{
		ctx:      ctx,
		repo:     repo,
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
	}
	m.Reload()
	return m
}

// Reload fetches the selected month's focus totals and due tasks.
func (m *CalendarModel) Reload() {
	first := time.Date(m.selected.Year(), m.selected.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	m.focus = make(map[string]int)
	stats, err := m.repo.GetDayStats(m.ctx, first, last)
	if err != nil {
		m.err = err
		return
	}
	for _, d := range stats {
		m.focus[d.Date] = d.FocusSeconds
	}

	m.due = make(map[string][]models.Task)
	tasks, err := m.repo.GetTasks(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := t.DueDate.Format("2006-01-02")
		m.due[key] = append(m.due[key], t)
	}
	m.err = nil
}

func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	prevMonth := m.selected.Month()
	switch key.String() {
	case "h", "left":
		m.selected = m.selected.AddDate(0, 0, -1)
	case "l", "right":
		m.selected = m.selected.AddDate(0, 0, 1)
	case "k", "up":
		m.selected = m.selected.AddDate(0, 0, -7)
	case "j", "down":
		m.selected = m.selected.AddDate(0, 0, 7)
	case "H", "pgup":
		m.selected = m.selected.AddDate(0, -1, 0)
	case "L", "pgdown":
		m.selected = m.selected.AddDate(0, 1, 0)
	case "t":
		now := time.Now()
		m.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	case "r":
		m.Reload()
		return m, nil
	default:
		return m, nil
	}
	if m.selected.Month() != prevMonth {
		m.Reload()
	}
	return m, nil
}

func (m CalendarModel) View(width int) string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render(m.selected.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(t.Dim.Render("  Mo   Tu   We   Th   Fr   Sa   Su"))
	b.WriteString("\n")

	first := time.Date(m.selected.Year(), m.selected.Month(), 1, 0, 0, 0, 0, time.Local)
	// Monday-based column of the first day.
	col := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("     ", col))

	for day := first; day.Month() == m.selected.Month(); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		cell := fmt.Sprintf("%3d", day.Day())
		mark := " "
		if m.focus[key] > 0 {
			mark = "•"
		}
		if len(m.due[key]) > 0 {
			mark = "!"
		}
		cell += mark

		switch {
		case day.Equal(m.selected):
			b.WriteString(t.Focused.Render(cell))
		case m.focus[key] > 0:
			b.WriteString(t.Highlight.Render(cell))
		default:
			b.WriteString(t.Item.Render(cell))
		}
		b.WriteString(" ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewDayDetail())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(t.Warn.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("  arrows move  H/L month  t today"))
	return b.String()
}

func (m CalendarModel) viewDayDetail() string {
	t := CurrentTheme
	key := m.selected.Format("2006-01-02")
	var lines []string

	if secs := m.focus[key]; secs > 0 {
		lines = append(lines, "  "+t.Item.Render("Focus: ")+t.Highlight.Render(FormatDuration(time.Duration(secs)*time.Second)))
	} else {
		lines = append(lines, "  "+t.Dim.Render("No focus recorded"))
	}
	for _, task := range m.due[key] {
		check := "[ ]"
		style := t.Item
		if task.Status == models.TaskCompleted {
			check = "[x]"
			style = t.DoneItem
		}
		lines = append(lines, fmt.Sprintf("  %s %s", check, style.Render(task.Description)))
	}
	return strings.Join(lines, "\n")
}
