package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/tempo/internal/models"
)

// AddTask inserts a new pending task. A nil due date means undated.
func (d *Database) AddTask(ctx context.Context, description string, dueDate *time.Time) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO tasks (description, status, due_date) VALUES (?, 'pending', ?)",
		description, toNullTime(dueDate))
	if err != nil {
		return 0, wrapTaskErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapTaskErr("add", 0, err)
	}
	return id, nil
}

// EditTask replaces a task's description.
func (d *Database) EditTask(ctx context.Context, id int64, description string) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE tasks SET description = ? WHERE id = ?", description, id)
	return wrapTaskErr("edit", id, err)
}

// SetTaskStatus toggles a task between pending and completed, stamping or
// clearing completed_at to match.
func (d *Database) SetTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	var err error
	if status == models.TaskCompleted {
		_, err = d.DB.ExecContext(ctx,
			"UPDATE tasks SET status = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?", status, id)
	} else {
		_, err = d.DB.ExecContext(ctx,
			"UPDATE tasks SET status = ?, completed_at = NULL WHERE id = ?", status, id)
	}
	return wrapTaskErr("update status", id, err)
}

// SetTaskDueDate sets or clears a task's due date.
func (d *Database) SetTaskDueDate(ctx context.Context, id int64, dueDate *time.Time) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE tasks SET due_date = ? WHERE id = ?", toNullTime(dueDate), id)
	return wrapTaskErr("set due date", id, err)
}

// DeleteTask removes a task.
func (d *Database) DeleteTask(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return wrapTaskErr("delete", id, err)
}

// GetTasks lists all tasks, pending first, then by creation order.
// Status is stored as text, so the pending-first rule needs an explicit
// rank rather than the column's alphabetical order.
func (d *Database) GetTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, description, status, due_date, created_at, completed_at
		FROM tasks
		ORDER BY CASE status WHEN 'pending' THEN 0 ELSE 1 END, created_at ASC, id ASC`)
	if err != nil {
		return nil, wrapTaskErr("list", 0, err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// GetTasksDueOn lists tasks due on a specific calendar day.
func (d *Database) GetTasksDueOn(ctx context.Context, day string) ([]models.Task, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, description, status, due_date, created_at, completed_at
		FROM tasks
		WHERE due_date IS NOT NULL AND strftime('%Y-%m-%d', due_date) = ?
		ORDER BY created_at ASC`, day)
	if err != nil {
		return nil, wrapTaskErr("list due", 0, err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// GetTasksCompletedSince lists tasks completed on or after the cutoff,
// newest first. The stats report uses this.
func (d *Database) GetTasksCompletedSince(ctx context.Context, cutoff time.Time) ([]models.Task, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, description, status, due_date, created_at, completed_at
		FROM tasks
		WHERE status = 'completed' AND completed_at >= ?
		ORDER BY completed_at DESC`, cutoff)
	if err != nil {
		return nil, wrapTaskErr("list completed", 0, err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var due, completed sql.NullTime
		if err := rows.Scan(&t.ID, &t.Description, &t.Status, &due, &t.CreatedAt, &completed); err != nil {
			return nil, wrapTaskErr("scan", 0, err)
		}
		t.DueDate = fromNullTime(due)
		t.CompletedAt = fromNullTime(completed)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
