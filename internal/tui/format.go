package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/tempo/internal/dial"
	"github.com/akyairhashvil/tempo/internal/timer"
)

// displayWidth measures rendered width ignoring styling escape sequences.
func displayWidth(s string) int {
	return ansi.StringWidth(s)
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatRemaining renders the countdown clock. Minutes are not reduced
// to hours, so a two-hour session reads "120:00".
func FormatRemaining(seconds int) string {
	return dial.FormatClock(seconds)
}

// FormatTimerStatus returns the one-line status under the dial.
func FormatTimerStatus(st timer.State) string {
	switch st.Status {
	case timer.StatusIdle:
		return fmt.Sprintf("Ready - %s", FormatRemaining(st.Duration))
	case timer.StatusAdjusting:
		return fmt.Sprintf("Selecting - %s", FormatRemaining(st.Duration))
	case timer.StatusCommitting:
		return fmt.Sprintf("Release to start %s", FormatRemaining(st.Duration))
	case timer.StatusRunning:
		return fmt.Sprintf("Focusing - %s remaining", FormatRemaining(st.Remaining))
	case timer.StatusPaused:
		return fmt.Sprintf("Paused - %s remaining", FormatRemaining(st.Remaining))
	case timer.StatusCompleted:
		return "Done. Press space to dismiss"
	case timer.StatusSettings:
		return "Settings"
	}
	return ""
}
