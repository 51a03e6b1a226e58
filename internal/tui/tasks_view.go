package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/models"
	"github.com/akyairhashvil/tempo/internal/storage"
)

type taskMode int

const (
	taskBrowse taskMode = iota
	taskAdd
	taskEdit
	taskDue
)

// TasksModel is the task list tab.
type TasksModel struct {
	ctx    context.Context
	repo   storage.TaskRepository
	tasks  []models.Task
	cursor int
	mode   taskMode
	input  textinput.Model
	err    error
}

func newTasksModel(ctx context.Context, repo storage.TaskRepository) TasksModel {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = 200
	ti.Width = 50
	m := TasksModel{ctx: ctx, repo: repo, input: ti}
	m.Reload()
	return m
}

func (m *TasksModel) Reload() {
	tasks, err := m.repo.GetTasks(m.ctx)
	m.tasks = tasks
	m.err = err
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TasksModel) InInputMode() bool { return m.mode != taskBrowse }

func (m TasksModel) current() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m TasksModel) Update(msg tea.Msg) (TasksModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode != taskBrowse {
		return m.updateInput(key)
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = taskAdd
		m.input.Placeholder = "New task..."
		m.input.SetValue("")
		m.input.Focus()
	case "e":
		if t, ok := m.current(); ok {
			m.mode = taskEdit
			m.input.Placeholder = "Description"
			m.input.SetValue(t.Description)
			m.input.Focus()
		}
	case "D":
		if _, ok := m.current(); ok {
			m.mode = taskDue
			m.input.Placeholder = "Due date YYYY-MM-DD (empty clears)"
			m.input.SetValue("")
			m.input.Focus()
		}
	case " ", "x":
		if t, ok := m.current(); ok {
			next := models.TaskCompleted
			if t.Status == models.TaskCompleted {
				next = models.TaskPending
			}
			m.err = m.repo.SetTaskStatus(m.ctx, t.ID, next)
			m.Reload()
		}
	case "d":
		if t, ok := m.current(); ok {
			m.err = m.repo.DeleteTask(m.ctx, t.ID)
			m.Reload()
		}
	case "r":
		m.Reload()
	}
	return m, nil
}

func (m TasksModel) updateInput(key tea.KeyMsg) (TasksModel, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.mode = taskBrowse
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case taskAdd:
			if value != "" {
				_, m.err = m.repo.AddTask(m.ctx, value, nil)
			}
		case taskEdit:
			if t, ok := m.current(); ok && value != "" {
				m.err = m.repo.EditTask(m.ctx, t.ID, value)
			}
		case taskDue:
			if t, ok := m.current(); ok {
				if value == "" {
					m.err = m.repo.SetTaskDueDate(m.ctx, t.ID, nil)
				} else if due, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
					m.err = err
				} else {
					m.err = m.repo.SetTaskDueDate(m.ctx, t.ID, &due)
				}
			}
		}
		m.mode = taskBrowse
		m.Reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m TasksModel) View(width, height int) string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Tasks"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(t.Dim.Render("  Nothing here. Press a to add a task."))
		b.WriteString("\n")
	}
	for i, task := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = t.Focused.Render("> ")
		}
		check := "[ ]"
		style := t.Item
		if task.Status == models.TaskCompleted {
			check = "[x]"
			style = t.DoneItem
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, style.Render(task.Description))
		if task.DueDate != nil {
			line += " " + t.Highlight.Render("(due "+task.DueDate.Format("Jan 2")+")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.mode != taskBrowse {
		b.WriteString("\n")
		b.WriteString(t.Input.Render(m.input.View()))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(t.Warn.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("  a add  e edit  space toggle  D due  d delete"))
	return b.String()
}
