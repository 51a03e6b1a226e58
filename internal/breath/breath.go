// Package breath drives the guided breathing exercise: a fixed
// inhale/hold/exhale cycle advanced by wall-clock reads, in the same
// recompute-from-timestamps style as the focus timer so a suspended
// terminal never desynchronizes the pacing.
package breath

import "time"

// Phase is one leg of the breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	}
	return "unknown"
}

// 4-7-8 pacing.
const (
	InhaleSeconds = 4
	HoldSeconds   = 7
	ExhaleSeconds = 8
	CycleSeconds  = InhaleSeconds + HoldSeconds + ExhaleSeconds
)

// Exercise tracks a breathing session. The zero value is a stopped exercise.
type Exercise struct {
	startedAt time.Time
	running   bool
	now       func() time.Time
}

// New returns a stopped exercise reading the real clock.
func New() *Exercise {
	return &Exercise{now: time.Now}
}

// NewWithClock returns a stopped exercise with an injected clock.
func NewWithClock(now func() time.Time) *Exercise {
	return &Exercise{now: now}
}

// Start begins a fresh session; restarting resets the cycle count.
func (e *Exercise) Start() {
	e.startedAt = e.now()
	e.running = true
}

// Stop ends the session.
func (e *Exercise) Stop() { e.running = false }

// Running reports whether a session is active.
func (e *Exercise) Running() bool { return e.running }

// elapsed returns whole seconds since start.
func (e *Exercise) elapsed() int {
	if !e.running {
		return 0
	}
	return int(e.now().Sub(e.startedAt) / time.Second)
}

// Phase returns the current leg of the cycle.
func (e *Exercise) Phase() Phase {
	within := e.elapsed() % CycleSeconds
	switch {
	case within < InhaleSeconds:
		return PhaseInhale
	case within < InhaleSeconds+HoldSeconds:
		return PhaseHold
	default:
		return PhaseExhale
	}
}

// PhaseRemaining returns whole seconds left in the current phase.
func (e *Exercise) PhaseRemaining() int {
	within := e.elapsed() % CycleSeconds
	switch {
	case within < InhaleSeconds:
		return InhaleSeconds - within
	case within < InhaleSeconds+HoldSeconds:
		return InhaleSeconds + HoldSeconds - within
	default:
		return CycleSeconds - within
	}
}

// Cycles returns the count of fully completed cycles.
func (e *Exercise) Cycles() int {
	return e.elapsed() / CycleSeconds
}

// PhaseProgress returns completion of the current phase in [0, 1], useful
// for scaling the visual.
func (e *Exercise) PhaseProgress() float64 {
	within := e.elapsed() % CycleSeconds
	switch {
	case within < InhaleSeconds:
		return float64(within) / InhaleSeconds
	case within < InhaleSeconds+HoldSeconds:
		return float64(within-InhaleSeconds) / HoldSeconds
	default:
		return float64(within-InhaleSeconds-HoldSeconds) / ExhaleSeconds
	}
}
