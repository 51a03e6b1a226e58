package storage

import (
	"context"
	"time"

	"github.com/akyairhashvil/tempo/internal/models"
)

// dayKey is the calendar-day format used to bucket sessions.
const dayKey = "2006-01-02"

// RecordSession stores one finished or abandoned countdown. The day bucket
// is computed in Go from the session's local start time so aggregation
// never depends on sqlite timezone handling.
func (d *Database) RecordSession(ctx context.Context, s models.FocusSession) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO focus_sessions (day, started_at, duration_seconds, elapsed_seconds, completed)
		VALUES (?, ?, ?, ?, ?)`,
		s.StartedAt.Format(dayKey), s.StartedAt, s.DurationSeconds, s.ElapsedSeconds,
		boolToInt(s.Completed))
	return wrapSessionErr("record", err)
}

// GetSessionsForDay lists a day's sessions in start order.
func (d *Database) GetSessionsForDay(ctx context.Context, day string) ([]models.FocusSession, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, started_at, duration_seconds, elapsed_seconds, completed
		FROM focus_sessions
		WHERE day = ?
		ORDER BY started_at ASC`, day)
	if err != nil {
		return nil, wrapSessionErr("list", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var s models.FocusSession
		var completed int
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.DurationSeconds, &s.ElapsedSeconds, &completed); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		s.Completed = completed != 0
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetDayStats aggregates focus work per day over [from, to] inclusive.
// Days without sessions are absent from the result.
func (d *Database) GetDayStats(ctx context.Context, from, to time.Time) ([]models.DayStats, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT day,
		       COUNT(*),
		       SUM(completed),
		       SUM(CASE WHEN completed = 1 THEN duration_seconds ELSE elapsed_seconds END)
		FROM focus_sessions
		WHERE day >= ? AND day <= ?
		GROUP BY day
		ORDER BY day ASC`,
		from.Format(dayKey), to.Format(dayKey))
	if err != nil {
		return nil, wrapSessionErr("aggregate", err)
	}
	defer rows.Close()

	var stats []models.DayStats
	for rows.Next() {
		var s models.DayStats
		if err := rows.Scan(&s.Date, &s.Sessions, &s.Completed, &s.FocusSeconds); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
