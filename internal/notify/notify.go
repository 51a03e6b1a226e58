// Package notify sends desktop notifications. Delivery is fire and
// forget; a headless session just logs the failure and moves on.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/util"
)

// SessionComplete announces that the countdown reached zero.
func SessionComplete(minutes int) {
	body := "Focus session finished."
	if minutes > 0 {
		body = util.FormatMinutesLong(minutes) + " of focus, done."
	}
	send("Session complete", body)
}

// BreakOver announces the end of a breathing break.
func BreakOver() {
	send("Break over", "Ready for the next session?")
}

func send(title, body string) {
	if err := beeep.Notify(config.AppName+": "+title, body, ""); err != nil {
		util.LogError("desktop notification", err)
	}
}
