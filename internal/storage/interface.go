package storage

import (
	"context"
	"time"

	"github.com/akyairhashvil/tempo/internal/models"
)

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	AddTask(ctx context.Context, description string, dueDate *time.Time) (int64, error)
	EditTask(ctx context.Context, id int64, description string) error
	SetTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error
	SetTaskDueDate(ctx context.Context, id int64, dueDate *time.Time) error
	DeleteTask(ctx context.Context, id int64) error
	GetTasks(ctx context.Context) ([]models.Task, error)
	GetTasksDueOn(ctx context.Context, day string) ([]models.Task, error)
	GetTasksCompletedSince(ctx context.Context, cutoff time.Time) ([]models.Task, error)
}

// NoteRepository defines note-related database operations.
type NoteRepository interface {
	AddNote(ctx context.Context, title, body string) (int64, error)
	UpdateNote(ctx context.Context, id int64, title, body string) error
	DeleteNote(ctx context.Context, id int64) error
	GetNotes(ctx context.Context) ([]models.Note, error)
}

// SessionRepository defines focus-session history operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.FocusSession) error
	GetSessionsForDay(ctx context.Context, day string) ([]models.FocusSession, error)
	GetDayStats(ctx context.Context, from, to time.Time) ([]models.DayStats, error)
}

// SettingsStore defines the namespaced key-value store.
type SettingsStore interface {
	GetSetting(ctx context.Context, key, def string) string
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	TaskRepository
	NoteRepository
	SessionRepository
	SettingsStore
}

var _ Repository = (*Database)(nil)
