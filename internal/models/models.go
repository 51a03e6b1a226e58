package models

import "time"

// TaskStatus enumerates the states of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Task is a single to-do item. DueDate is nil for undated tasks.
type Task struct {
	ID          int64
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Note is a free-form note ordered by last edit.
type Note struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FocusSession records one finished or abandoned countdown for the stats
// dashboard. Completed is false for cancelled sessions; ElapsedSeconds then
// holds the partial focus time.
type FocusSession struct {
	ID              int64
	StartedAt       time.Time
	DurationSeconds int
	ElapsedSeconds  int
	Completed       bool
}

// DayStats aggregates one calendar day of focus work.
type DayStats struct {
	Date         string // YYYY-MM-DD
	Sessions     int
	Completed    int
	FocusSeconds int
}
