package tui

import (
	"context"
	"testing"

	"github.com/akyairhashvil/tempo/internal/models"
)

func driveTasks(t *testing.T, m TasksModel, keys ...string) TasksModel {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func newTestTasksModel(t *testing.T) TasksModel {
	t.Helper()
	return newTasksModel(context.Background(), setupModelDB(t))
}

func TestAddTaskFlow(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a")
	if !m.InInputMode() {
		t.Fatalf("a should open the input")
	}
	m = driveTasks(t, m, "ship the release", "enter")
	if m.InInputMode() {
		t.Fatalf("enter should close the input")
	}
	if len(m.tasks) != 1 || m.tasks[0].Description != "ship the release" {
		t.Fatalf("task not created: %+v", m.tasks)
	}
}

func TestAddTaskEmptyInputIsNoop(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "enter")
	if len(m.tasks) != 0 {
		t.Fatalf("empty input must not create a task")
	}
}

func TestToggleAndDeleteTask(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "water plants", "enter")

	m = driveTasks(t, m, "x")
	if m.tasks[0].Status != models.TaskCompleted {
		t.Fatalf("x should complete the task, got %q", m.tasks[0].Status)
	}
	m = driveTasks(t, m, "x")
	if m.tasks[0].Status != models.TaskPending {
		t.Fatalf("x again should reopen, got %q", m.tasks[0].Status)
	}

	m = driveTasks(t, m, "d")
	if len(m.tasks) != 0 {
		t.Fatalf("d should delete, got %d tasks", len(m.tasks))
	}
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp to 0, got %d", m.cursor)
	}
}

func TestEditTaskFlow(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "draft", "enter", "e")
	if m.input.Value() != "draft" {
		t.Fatalf("edit should prefill the description, got %q", m.input.Value())
	}
	m = driveTasks(t, m, " v2", "enter")
	if m.tasks[0].Description != "draft v2" {
		t.Fatalf("edit not applied: %q", m.tasks[0].Description)
	}
}

func TestDueDateFlow(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "dentist", "enter")

	m = driveTasks(t, m, "D", "2026-09-01", "enter")
	if m.tasks[0].DueDate == nil {
		t.Fatalf("due date not set")
	}
	if got := m.tasks[0].DueDate.Format("2006-01-02"); got != "2026-09-01" {
		t.Fatalf("due date = %s", got)
	}

	// Empty input clears the date.
	m = driveTasks(t, m, "D", "enter")
	if m.tasks[0].DueDate != nil {
		t.Fatalf("empty due input should clear the date")
	}
}

func TestDueDateBadInputSurfacesError(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "dentist", "enter")
	m = driveTasks(t, m, "D", "next tuesday", "enter")
	if m.err == nil {
		t.Fatalf("expected a parse error")
	}
	if m.InInputMode() {
		t.Fatalf("bad input should still leave input mode")
	}
}

func TestTaskCursorMovement(t *testing.T) {
	m := newTestTasksModel(t)
	m = driveTasks(t, m, "a", "one", "enter", "a", "two", "enter", "a", "three", "enter")
	if len(m.tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(m.tasks))
	}
	m = driveTasks(t, m, "j", "j", "j")
	if m.cursor != 2 {
		t.Fatalf("cursor should stop at the last task, got %d", m.cursor)
	}
	m = driveTasks(t, m, "k")
	if m.cursor != 1 {
		t.Fatalf("k should move up, got %d", m.cursor)
	}
	if m.View(80, 24) == "" {
		t.Fatalf("expected non-empty view")
	}
}
