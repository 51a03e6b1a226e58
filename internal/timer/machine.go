// Package timer owns the focus countdown: a finite-state reducer that keeps
// duration and remaining-time accounting honest by recomputing from the wall
// clock instead of counting ticks, so tab-away time and slow schedulers
// cannot drift the display. Nothing in this package returns an error; bad
// inputs are clamped and invalid event/state pairs are no-ops.
package timer

import "time"

// Status enumerates the machine's exclusive states.
type Status int

const (
	StatusIdle Status = iota
	StatusAdjusting
	StatusCommitting
	StatusRunning
	StatusPaused
	StatusCompleted
	StatusSettings
)

// String returns the persisted/rendered name of a status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAdjusting:
		return "adjusting"
	case StatusCommitting:
		return "committing"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	case StatusSettings:
		return "settings"
	}
	return "unknown"
}

// Duration bounds in whole minutes, and the fallback session length.
const (
	MinMinutes     = 1
	MaxMinutes     = 120
	DefaultMinutes = 25
)

// State is the single source of truth for the countdown. Zero time values
// mean "absent".
type State struct {
	Status    Status
	Duration  int // configured session length, seconds, multiple of 60
	Remaining int // seconds left; frozen while paused
	StartTime time.Time
	PausedAt  time.Time
	EndTime   time.Time // set only while running
}

// Store persists the countdown across process restarts. Implementations are
// best-effort: Save failures are logged and ignored, a failed Load counts as
// no snapshot.
//
//go:generate mockgen -source=machine.go -destination=mock_store_test.go -package=timer
type Store interface {
	LoadSnapshot() (Snapshot, bool)
	SaveSnapshot(Snapshot) error
	ClearSnapshot() error
}

// Machine applies events to the timer state and mirrors running/paused
// states into its Store. It is not safe for concurrent use; the TUI event
// loop is its single caller.
type Machine struct {
	state State
	store Store
	now   func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock injects the wall clock. Tests use this for determinism.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// New builds a machine with the given default session minutes and restores
// any in-flight session from the store. A nil store disables persistence.
func New(store Store, defaultMinutes int, opts ...Option) *Machine {
	m := &Machine{
		state: State{
			Status:   StatusIdle,
			Duration: clampMinutes(defaultMinutes) * 60,
		},
		store: store,
		now:   time.Now,
	}
	m.state.Remaining = m.state.Duration
	for _, opt := range opts {
		opt(m)
	}
	m.restore()
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

// Apply runs one transition and returns the resulting state. Events invalid
// for the current status leave the state untouched.
func (m *Machine) Apply(ev Event) State {
	switch ev := ev.(type) {
	case StartAdjust:
		if m.state.Status == StatusIdle {
			m.state.Status = StatusAdjusting
		}
	case SetDuration:
		if m.state.Status == StatusAdjusting {
			m.state.Duration = clampMinutes(ev.Minutes) * 60
			m.state.Remaining = m.state.Duration
		}
	case EndAdjust:
		switch m.state.Status {
		case StatusAdjusting, StatusCommitting:
			m.state.Status = StatusIdle
		}
	case EnterDropZone:
		if m.state.Status == StatusAdjusting {
			m.state.Status = StatusCommitting
		}
	case ExitDropZone:
		if m.state.Status == StatusCommitting {
			m.state.Status = StatusAdjusting
		}
	case Commit:
		switch m.state.Status {
		case StatusIdle, StatusCommitting:
			m.start()
		}
	case Tick:
		if m.state.Status == StatusRunning {
			m.recompute()
		}
	case Pause:
		if m.state.Status == StatusRunning {
			m.recompute()
			if m.state.Status == StatusRunning { // recompute may complete
				m.state.Status = StatusPaused
				m.state.PausedAt = m.now()
				m.state.EndTime = time.Time{}
				m.persist()
			}
		}
	case Resume:
		if m.state.Status == StatusPaused {
			m.state.Status = StatusRunning
			m.state.EndTime = m.now().Add(time.Duration(m.state.Remaining) * time.Second)
			m.state.PausedAt = time.Time{}
			m.persist()
		}
	case Cancel:
		switch m.state.Status {
		case StatusRunning, StatusPaused, StatusCompleted:
			m.resetRun()
		}
	case OpenSettings:
		if m.state.Status == StatusIdle {
			m.state.Status = StatusSettings
		}
	case CloseSettings:
		if m.state.Status == StatusSettings {
			m.state.Status = StatusIdle
		}
	case AcknowledgeComplete:
		if m.state.Status == StatusCompleted {
			m.resetRun()
		}
	case Reset:
		m.state = State{
			Status:    StatusIdle,
			Duration:  DefaultMinutes * 60,
			Remaining: DefaultMinutes * 60,
		}
		m.discard()
	}
	return m.state
}

// Elapsed returns the seconds already spent in the current session.
func (m *Machine) Elapsed() int {
	return m.state.Duration - m.state.Remaining
}

// Progress returns session completion in [0, 1].
func (m *Machine) Progress() float64 {
	if m.state.Duration == 0 {
		return 0
	}
	return float64(m.Elapsed()) / float64(m.state.Duration)
}

func (m *Machine) start() {
	now := m.now()
	m.state.Status = StatusRunning
	m.state.Remaining = m.state.Duration
	m.state.StartTime = now
	m.state.PausedAt = time.Time{}
	m.state.EndTime = now.Add(time.Duration(m.state.Duration) * time.Second)
	m.persist()
}

// recompute derives Remaining from EndTime and the wall clock. Repeated or
// delayed calls converge to the same value instead of accumulating drift.
func (m *Machine) recompute() {
	left := int(m.state.EndTime.Sub(m.now()) / time.Second)
	if left <= 0 {
		m.state.Status = StatusCompleted
		m.state.Remaining = 0
		m.state.EndTime = time.Time{}
		return
	}
	if left > m.state.Duration {
		left = m.state.Duration
	}
	m.state.Remaining = left
}

// resetRun returns to idle keeping the configured duration.
func (m *Machine) resetRun() {
	m.state.Status = StatusIdle
	m.state.Remaining = m.state.Duration
	m.state.StartTime = time.Time{}
	m.state.PausedAt = time.Time{}
	m.state.EndTime = time.Time{}
	m.discard()
}

func clampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}
