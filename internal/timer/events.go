package timer

// Event is the closed union of inputs the machine consumes. Events carry
// intent only; all time readings happen inside Apply against the machine's
// clock so transitions stay deterministic under test.
type Event interface {
	isEvent()
}

// StartAdjust begins interactive duration selection from idle.
type StartAdjust struct{}

// SetDuration requests a new session length while adjusting. Minutes are
// clamped to [MinMinutes, MaxMinutes] before acceptance.
type SetDuration struct {
	Minutes int
}

// EndAdjust abandons duration selection and returns to idle.
type EndAdjust struct{}

// EnterDropZone arms the commit while a drag hovers the commit zone.
type EnterDropZone struct{}

// ExitDropZone disarms a pending commit when the drag leaves the zone.
type ExitDropZone struct{}

// Commit starts the countdown with the configured duration.
type Commit struct{}

// Tick asks the machine to recompute remaining time. A no-op unless running.
type Tick struct{}

// Pause freezes a running countdown.
type Pause struct{}

// Resume continues a paused countdown.
type Resume struct{}

// Cancel aborts the current countdown, preserving the configured duration.
type Cancel struct{}

// OpenSettings enters the settings state from idle.
type OpenSettings struct{}

// CloseSettings returns from settings to idle.
type CloseSettings struct{}

// AcknowledgeComplete dismisses a finished session.
type AcknowledgeComplete struct{}

// Reset hard-resets the machine to defaults from any state.
type Reset struct{}

func (StartAdjust) isEvent()         {}
func (SetDuration) isEvent()         {}
func (EndAdjust) isEvent()           {}
func (EnterDropZone) isEvent()       {}
func (ExitDropZone) isEvent()        {}
func (Commit) isEvent()              {}
func (Tick) isEvent()                {}
func (Pause) isEvent()               {}
func (Resume) isEvent()              {}
func (Cancel) isEvent()              {}
func (OpenSettings) isEvent()        {}
func (CloseSettings) isEvent()       {}
func (AcknowledgeComplete) isEvent() {}
func (Reset) isEvent()               {}
