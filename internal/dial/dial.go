// Package dial holds the geometry behind the radial duration picker:
// converting a pointer position into a clock-style angle, an angle into
// minutes, and deciding whether the pointer sits on the dial's rim.
// Everything here is pure; callers own clamping of misused values.
package dial

import (
	"fmt"
	"math"
)

// DefaultIncrement is the snap granularity for dial-selected minutes.
const DefaultIncrement = 5

// DefaultEdgeThreshold is the rim band width as a fraction of the radius.
const DefaultEdgeThreshold = 0.3

// outerSlack tolerates drags that overshoot the rim slightly.
const outerSlack = 1.1

// AngleFromCenter returns the angle of the pointer measured clockwise from
// twelve o'clock, normalized into [0, 2π). The degenerate case where the
// pointer sits exactly on the center yields 0.
func AngleFromCenter(pointerX, pointerY, centerX, centerY float64) float64 {
	dx := pointerX - centerX
	dy := pointerY - centerY
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleToMinutes maps an angle in [0, 2π) linearly onto [0, maxMinutes],
// clamped to the closed interval.
func AngleToMinutes(angle float64, maxMinutes int) int {
	minutes := int(math.Round(angle / (2 * math.Pi) * float64(maxMinutes)))
	if minutes < 0 {
		return 0
	}
	if minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}

// SnapToIncrement rounds value to the nearest multiple of increment,
// half up. A non-positive increment returns the value unchanged.
func SnapToIncrement(value, increment int) int {
	if increment <= 0 {
		return value
	}
	return ((value + increment/2) / increment) * increment
}

// IsOnEdge reports whether the pointer lies in the rim band of a circle:
// distance from center within [radius*(1-threshold), radius*1.1]. The 10%
// outward slack keeps a drag alive when it drifts past the rim.
func IsOnEdge(pointerX, pointerY, centerX, centerY, radius, threshold float64) bool {
	dx := pointerX - centerX
	dy := pointerY - centerY
	dist := math.Hypot(dx, dy)
	return dist >= radius*(1-threshold) && dist <= radius*outerSlack
}

// FormatClock renders a second count as zero-padded "MM:SS". Minutes are
// not reduced modulo 60: a 120-minute session renders as "120:00".
// Negative inputs render as "00:00".
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
