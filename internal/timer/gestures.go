package timer

import "github.com/akyairhashvil/tempo/internal/dial"

// Geometry describes the dial the gestures are measured against. Coordinates
// are whatever space the presentation layer works in (terminal cells here),
// already corrected for aspect ratio by the caller.
type Geometry struct {
	CenterX, CenterY float64
	Radius           float64
	// EdgeThreshold is the rim band width fraction; zero means the default.
	EdgeThreshold float64
	// CommitZoneRatio bounds the inner disc that arms a commit; zero means
	// the default.
	CommitZoneRatio float64
	// DialMinutes is the minute value of a full revolution; zero means 60.
	DialMinutes int
}

const defaultCommitZoneRatio = 0.35

func (g Geometry) edgeThreshold() float64 {
	if g.EdgeThreshold <= 0 {
		return dial.DefaultEdgeThreshold
	}
	return g.EdgeThreshold
}

func (g Geometry) commitZoneRatio() float64 {
	if g.CommitZoneRatio <= 0 {
		return defaultCommitZoneRatio
	}
	return g.CommitZoneRatio
}

func (g Geometry) dialMinutes() int {
	if g.DialMinutes <= 0 {
		return 60
	}
	return g.DialMinutes
}

// InCommitZone reports whether a point sits inside the commit disc.
func (g Geometry) InCommitZone(x, y float64) bool {
	dx := x - g.CenterX
	dy := y - g.CenterY
	r := g.Radius * g.commitZoneRatio()
	return dx*dx+dy*dy <= r*r
}

// Controller translates discrete pointer gestures into machine events. It is
// agnostic to the input technology; the presentation layer owns recognizing
// taps, long presses and flicks and feeding them here.
type Controller struct {
	machine *Machine
	geo     Geometry
}

// NewController wires a gesture controller to a machine.
func NewController(m *Machine, geo Geometry) *Controller {
	return &Controller{machine: m, geo: geo}
}

// SetGeometry replaces the dial geometry, e.g. after a window resize.
func (c *Controller) SetGeometry(geo Geometry) { c.geo = geo }

// DragStart begins duration selection when the machine is idle.
func (c *Controller) DragStart() State {
	return c.machine.Apply(StartAdjust{})
}

// DragMove feeds a pointer position during a drag. On the rim it selects a
// snapped duration; inside the commit disc it arms the commit; leaving the
// disc disarms it.
func (c *Controller) DragMove(x, y float64) State {
	st := c.machine.State()
	inZone := c.geo.InCommitZone(x, y)
	switch st.Status {
	case StatusAdjusting:
		if inZone {
			return c.machine.Apply(EnterDropZone{})
		}
		if dial.IsOnEdge(x, y, c.geo.CenterX, c.geo.CenterY, c.geo.Radius, c.geo.edgeThreshold()) {
			angle := dial.AngleFromCenter(x, y, c.geo.CenterX, c.geo.CenterY)
			minutes := dial.SnapToIncrement(dial.AngleToMinutes(angle, c.geo.dialMinutes()), dial.DefaultIncrement)
			return c.machine.Apply(SetDuration{Minutes: minutes})
		}
	case StatusCommitting:
		if !inZone {
			return c.machine.Apply(ExitDropZone{})
		}
	}
	return st
}

// DragEnd releases a drag. Releasing inside the commit zone starts the
// countdown; anywhere else returns to idle.
func (c *Controller) DragEnd(insideCommitZone bool) State {
	st := c.machine.State()
	switch st.Status {
	case StatusCommitting:
		if insideCommitZone {
			return c.machine.Apply(Commit{})
		}
		return c.machine.Apply(EndAdjust{})
	case StatusAdjusting:
		return c.machine.Apply(EndAdjust{})
	}
	return st
}

// Tap starts from idle, toggles pause/resume mid-session, and dismisses a
// finished session.
func (c *Controller) Tap() State {
	switch c.machine.State().Status {
	case StatusIdle:
		return c.machine.Apply(Commit{})
	case StatusRunning:
		return c.machine.Apply(Pause{})
	case StatusPaused:
		return c.machine.Apply(Resume{})
	case StatusCompleted:
		return c.machine.Apply(AcknowledgeComplete{})
	}
	return c.machine.State()
}

// LongPress cancels whatever session is in flight.
func (c *Controller) LongPress() State {
	return c.machine.Apply(Cancel{})
}

// FlickUp toggles the settings state from idle.
func (c *Controller) FlickUp() State {
	switch c.machine.State().Status {
	case StatusIdle:
		return c.machine.Apply(OpenSettings{})
	case StatusSettings:
		return c.machine.Apply(CloseSettings{})
	}
	return c.machine.State()
}
