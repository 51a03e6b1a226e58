package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/tempo/internal/models"
	"github.com/akyairhashvil/tempo/internal/storage"
)

type noteMode int

const (
	noteBrowse noteMode = iota
	noteTitle
	noteBody
)

// NotesModel is the free-form notes tab. Editing is two-stage: title in a
// single-line input, then the body in a textarea saved with ctrl+s.
type NotesModel struct {
	ctx    context.Context
	repo   storage.NoteRepository
	notes  []models.Note
	cursor int
	mode   noteMode

	editingID int64 // 0 while creating a new note
	title     textinput.Model
	body      textarea.Model
	err       error
}

func newNotesModel(ctx context.Context, repo storage.NoteRepository) NotesModel {
	ti := textinput.New()
	ti.Placeholder = "Note title..."
	ti.CharLimit = 120
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Write..."
	ta.SetWidth(60)
	ta.SetHeight(10)

	m := NotesModel{ctx: ctx, repo: repo, title: ti, body: ta}
	m.Reload()
	return m
}

func (m *NotesModel) Reload() {
	notes, err := m.repo.GetNotes(m.ctx)
	m.notes = notes
	m.err = err
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *NotesModel) SetSize(width, height int) {
	w := width - 8
	if w < 20 {
		w = 20
	}
	h := height - 10
	if h < 4 {
		h = 4
	}
	m.body.SetWidth(w)
	m.body.SetHeight(h)
}

func (m NotesModel) InInputMode() bool { return m.mode != noteBrowse }

func (m NotesModel) current() (models.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.cursor], true
}

func (m NotesModel) Update(msg tea.Msg) (NotesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case noteTitle:
		return m.updateTitle(key)
	case noteBody:
		return m.updateBody(key)
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = noteTitle
		m.editingID = 0
		m.title.SetValue("")
		m.title.Focus()
	case "e", "enter":
		if n, ok := m.current(); ok {
			m.mode = noteTitle
			m.editingID = n.ID
			m.title.SetValue(n.Title)
			m.title.Focus()
		}
	case "d":
		if n, ok := m.current(); ok {
			m.err = m.repo.DeleteNote(m.ctx, n.ID)
			m.Reload()
		}
	case "r":
		m.Reload()
	}
	return m, nil
}

func (m NotesModel) updateTitle(key tea.KeyMsg) (NotesModel, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.mode = noteBrowse
		return m, nil
	case tea.KeyEnter:
		if strings.TrimSpace(m.title.Value()) == "" {
			return m, nil
		}
		m.mode = noteBody
		if m.editingID != 0 {
			if n, ok := m.current(); ok && n.ID == m.editingID {
				m.body.SetValue(n.Body)
			}
		} else {
			m.body.SetValue("")
		}
		m.body.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(key)
	return m, cmd
}

func (m NotesModel) updateBody(key tea.KeyMsg) (NotesModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = noteBrowse
		return m, nil
	case "ctrl+s":
		title := strings.TrimSpace(m.title.Value())
		body := m.body.Value()
		if m.editingID == 0 {
			_, m.err = m.repo.AddNote(m.ctx, title, body)
		} else {
			m.err = m.repo.UpdateNote(m.ctx, m.editingID, title, body)
		}
		m.mode = noteBrowse
		m.Reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(key)
	return m, cmd
}

func (m NotesModel) View() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Notes"))
	b.WriteString("\n\n")

	switch m.mode {
	case noteTitle:
		b.WriteString(t.Input.Render(m.title.View()))
		b.WriteString("\n")
		b.WriteString(t.Dim.Render("  enter continue  esc cancel"))
		return b.String()
	case noteBody:
		b.WriteString(t.Item.Render(strings.TrimSpace(m.title.Value())))
		b.WriteString("\n\n")
		b.WriteString(m.body.View())
		b.WriteString("\n")
		b.WriteString(t.Dim.Render("  ctrl+s save  esc discard"))
		return b.String()
	}

	if len(m.notes) == 0 {
		b.WriteString(t.Dim.Render("  No notes yet. Press a to write one."))
		b.WriteString("\n")
	}
	for i, n := range m.notes {
		cursor := "  "
		if i == m.cursor {
			cursor = t.Focused.Render("> ")
		}
		preview := firstLine(n.Body)
		line := cursor + t.Item.Render(n.Title)
		if preview != "" {
			line += "  " + t.Dim.Render(truncate(preview, 40))
		}
		line += "  " + t.Dim.Render(n.UpdatedAt.Format("Jan 2 15:04"))
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(t.Warn.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("  a add  enter edit  d delete"))
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens the preview to max display cells without splitting
// a rune.
func truncate(s string, max int) string {
	return ansi.Truncate(s, max, "~")
}
