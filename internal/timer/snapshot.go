package timer

import "time"

// SnapshotVersion tags the persisted layout. Restore discards snapshots
// carrying any other version instead of guessing at migrations.
const SnapshotVersion = 1

// Snapshot is the durable form of an in-flight session. Only running and
// paused sessions are ever written; derived fields stay out.
type Snapshot struct {
	Version   int    `json:"version"`
	Status    string `json:"status"`
	Duration  int    `json:"duration"`
	Remaining int    `json:"remaining"`
	StartMs   int64  `json:"start_ms,omitempty"`
	PausedMs  int64  `json:"paused_ms,omitempty"`
	EndMs     int64  `json:"end_ms,omitempty"`
}

// persist mirrors a running or paused state into the store, best effort.
func (m *Machine) persist() {
	if m.store == nil {
		return
	}
	s := m.state
	if s.Status != StatusRunning && s.Status != StatusPaused {
		return
	}
	snap := Snapshot{
		Version:   SnapshotVersion,
		Status:    s.Status.String(),
		Duration:  s.Duration,
		Remaining: s.Remaining,
	}
	if !s.StartTime.IsZero() {
		snap.StartMs = s.StartTime.UnixMilli()
	}
	if !s.PausedAt.IsZero() {
		snap.PausedMs = s.PausedAt.UnixMilli()
	}
	if !s.EndTime.IsZero() {
		snap.EndMs = s.EndTime.UnixMilli()
	}
	_ = m.store.SaveSnapshot(snap)
}

func (m *Machine) discard() {
	if m.store == nil {
		return
	}
	_ = m.store.ClearSnapshot()
}

// restore rebuilds an in-flight session from the store. A running snapshot
// whose end time already passed restores straight to completed with zero
// remaining; a paused snapshot restores its frozen remaining verbatim.
// Anything else, including unknown versions, is discarded.
func (m *Machine) restore() {
	if m.store == nil {
		return
	}
	snap, ok := m.store.LoadSnapshot()
	if !ok {
		return
	}
	if snap.Version != SnapshotVersion {
		m.discard()
		return
	}
	duration := snap.Duration
	if duration < MinMinutes*60 || duration > MaxMinutes*60 {
		m.discard()
		return
	}
	switch snap.Status {
	case StatusRunning.String():
		end := time.UnixMilli(snap.EndMs)
		left := int(end.Sub(m.now()) / time.Second)
		m.state.Duration = duration
		if left <= 0 {
			m.state.Status = StatusCompleted
			m.state.Remaining = 0
			if snap.StartMs > 0 {
				m.state.StartTime = time.UnixMilli(snap.StartMs)
			}
			return
		}
		if left > duration {
			left = duration
		}
		m.state.Status = StatusRunning
		m.state.Remaining = left
		m.state.EndTime = end
		if snap.StartMs > 0 {
			m.state.StartTime = time.UnixMilli(snap.StartMs)
		}
	case StatusPaused.String():
		remaining := snap.Remaining
		if remaining < 0 {
			remaining = 0
		}
		if remaining > duration {
			remaining = duration
		}
		m.state.Status = StatusPaused
		m.state.Duration = duration
		m.state.Remaining = remaining
		if snap.StartMs > 0 {
			m.state.StartTime = time.UnixMilli(snap.StartMs)
		}
		if snap.PausedMs > 0 {
			m.state.PausedAt = time.UnixMilli(snap.PausedMs)
		}
	default:
		m.discard()
	}
}
