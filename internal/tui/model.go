package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/breath"
	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/models"
	"github.com/akyairhashvil/tempo/internal/notify"
	"github.com/akyairhashvil/tempo/internal/sound"
	"github.com/akyairhashvil/tempo/internal/storage"
	"github.com/akyairhashvil/tempo/internal/timer"
)

// Tab identifies one of the top-level screens.
type Tab int

const (
	TabTimer Tab = iota
	TabTasks
	TabNotes
	TabCalendar
	TabBreathe
	TabStats
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabTimer:
		return "Timer"
	case TabTasks:
		return "Tasks"
	case TabNotes:
		return "Notes"
	case TabCalendar:
		return "Calendar"
	case TabBreathe:
		return "Breathe"
	case TabStats:
		return "Stats"
	}
	return "?"
}

// MainModel is the root bubbletea model. It owns the timer machine and
// switches between the tab sub-models.
type MainModel struct {
	ctx  context.Context
	repo *storage.Database
	cfg  config.Config

	machine    *timer.Machine
	controller *timer.Controller
	drag       dragState
	settings   settingsState

	tab      Tab
	tasks    TasksModel
	notes    NotesModel
	calendar CalendarModel
	stats    StatsModel
	breathe  BreatheModel
	lock     LockModel

	soundOn   bool
	notifyOn  bool
	breakOver func()

	width  int
	height int
	now    func() time.Time
	err    error
}

func NewMainModel(ctx context.Context, repo *storage.Database, cfg config.Config) MainModel {
	SetTheme(repo.GetSetting(ctx, config.KeyTheme, cfg.Theme))

	defaultMinutes := cfg.Timer.DefaultMinutes
	if v := repo.GetSetting(ctx, config.KeyDefaultDuration, ""); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			defaultMinutes = n
		}
	}

	m := MainModel{
		ctx:       ctx,
		repo:      repo,
		cfg:       cfg,
		machine:   timer.New(repo, defaultMinutes),
		tab:       TabTimer,
		tasks:     newTasksModel(ctx, repo),
		notes:     newNotesModel(ctx, repo),
		calendar:  newCalendarModel(ctx, repo),
		stats:     newStatsModel(ctx, repo),
		breathe:   newBreatheModel(breath.New()),
		lock:      newLockModel(repo.GetSetting(ctx, config.KeyLockHash, "")),
		soundOn:   repo.GetSetting(ctx, config.KeySoundEnabled, boolSetting(cfg.Alerts.Sound)) == "on",
		notifyOn:  repo.GetSetting(ctx, config.KeyNotifyEnabled, boolSetting(cfg.Alerts.Notification)) == "on",
		breakOver: notify.BreakOver,
		now:       time.Now,
	}
	m.controller = timer.NewController(m.machine, timer.Geometry{})
	sound.SetVolume(cfg.Alerts.Volume)
	// A configured passphrase locks the app at startup.
	m.lock.Locked = m.lock.PassphraseHash != ""
	return m
}

func boolSetting(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}

func (m MainModel) Init() tea.Cmd {
	return tickCmd()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.lock.Touch(m.now())

	case tea.MouseMsg:
		m.lock.Touch(m.now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.controller.SetGeometry(m.dialGeometry())
		m.notes.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.updateTick()
	}

	if m.lock.Locked {
		var cmd tea.Cmd
		m.lock, cmd = m.lock.Update(msg, m.now())
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok && !m.inInputMode() {
		switch key.String() {
		case "tab":
			m.tab = (m.tab + 1) % tabCount
			m.refreshTab()
			return m, nil
		case "shift+tab":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refreshTab()
			return m, nil
		case "1", "2", "3", "4", "5", "6":
			m.tab = Tab(int(key.String()[0] - '1'))
			m.refreshTab()
			return m, nil
		case "ctrl+l":
			if m.lock.PassphraseHash != "" {
				m.lock.Locked = true
			}
			return m, nil
		}
	}

	return m.updateTab(msg)
}

// refreshTab reloads database-backed tabs when the user switches to them,
// so edits made elsewhere (or focus minutes from a just-finished session)
// show up without restarting.
func (m *MainModel) refreshTab() {
	switch m.tab {
	case TabTasks:
		m.tasks.Reload()
	case TabNotes:
		m.notes.Reload()
	case TabCalendar:
		m.calendar.Reload()
	case TabStats:
		m.stats.Reload()
	}
}

func (m MainModel) updateTick() (tea.Model, tea.Cmd) {
	now := m.now()
	if m.lock.MaybeAutoLock(now) {
		return m, tickCmd()
	}

	before := m.machine.State()
	st := m.machine.Apply(timer.Tick{})
	if before.Status == timer.StatusRunning && st.Status == timer.StatusCompleted {
		m.onSessionComplete(before)
	}
	return m, tickCmd()
}

// onSessionComplete records the finished session and fires the configured
// alerts.
func (m *MainModel) onSessionComplete(prev timer.State) {
	if err := m.repo.RecordSession(m.ctx, models.FocusSession{
		StartedAt:       prev.StartTime,
		DurationSeconds: prev.Duration,
		ElapsedSeconds:  prev.Duration,
		Completed:       true,
	}); err != nil {
		m.err = err
	}
	if m.notifyOn {
		notify.SessionComplete(prev.Duration / 60)
	}
	if m.soundOn {
		sound.PlayChime()
	}
}

// recordAbandoned stores the partial focus time of a cancelled session.
func (m *MainModel) recordAbandoned(prev timer.State) {
	if prev.Status != timer.StatusRunning && prev.Status != timer.StatusPaused {
		return
	}
	elapsed := prev.Duration - prev.Remaining
	if elapsed <= 0 {
		return
	}
	if err := m.repo.RecordSession(m.ctx, models.FocusSession{
		StartedAt:       prev.StartTime,
		DurationSeconds: prev.Duration,
		ElapsedSeconds:  elapsed,
		Completed:       false,
	}); err != nil {
		m.err = err
	}
}

func (m MainModel) inInputMode() bool {
	switch m.tab {
	case TabTasks:
		return m.tasks.InInputMode()
	case TabNotes:
		return m.notes.InInputMode()
	case TabTimer:
		return m.settings.editingPassphrase
	}
	return false
}

func (m MainModel) updateTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case TabTimer:
		return m.updateTimer(msg)
	case TabTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case TabNotes:
		m.notes, cmd = m.notes.Update(msg)
	case TabCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case TabBreathe:
		wasActive := m.breathe.ex.Running() && m.breathe.ex.Cycles() > 0
		m.breathe, cmd = m.breathe.Update(msg)
		if wasActive && !m.breathe.ex.Running() && m.notifyOn {
			m.breakOver()
		}
	case TabStats:
		m.stats, cmd = m.stats.Update(msg)
	}
	return m, cmd
}

func (m MainModel) View() string {
	if m.lock.Locked {
		return m.lock.View(m.width, m.height)
	}

	var body string
	switch m.tab {
	case TabTimer:
		body = m.viewTimer()
	case TabTasks:
		body = m.tasks.View(m.width, m.height)
	case TabNotes:
		body = m.notes.View()
	case TabCalendar:
		body = m.calendar.View(m.width)
	case TabBreathe:
		body = m.breathe.View(m.width, m.height)
	case TabStats:
		body = m.stats.View(m.width)
	}

	var b strings.Builder
	b.WriteString(m.viewTabBar())
	b.WriteString("\n")
	b.WriteString(body)
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Warn.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	return CurrentTheme.Base.Render(b.String())
}

func (m MainModel) viewTabBar() string {
	var parts []string
	for t := TabTimer; t < tabCount; t++ {
		label := fmt.Sprintf("%d:%s", int(t)+1, t)
		if t == m.tab {
			parts = append(parts, CurrentTheme.Focused.Render(label))
		} else {
			parts = append(parts, CurrentTheme.Dim.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
