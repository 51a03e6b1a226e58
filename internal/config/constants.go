package config

import "time"

// Application identity.
const (
	AppName    = "tempo"
	DBFileName = "tempo.db"
)

// Timer defaults. Session length bounds live in the timer package; these
// cover the surrounding app behavior.
const (
	TickInterval  = time.Second
	AutoLockAfter = 10 * time.Minute
)

// Settings keys in the local key-value store. The storage layer prepends
// the namespace prefix.
const (
	KeyTimerState      = "timer.state"
	KeyDefaultDuration = "timer.default_minutes"
	KeyTheme           = "ui.theme"
	KeySoundEnabled    = "sound.enabled"
	KeyNotifyEnabled   = "notify.enabled"
	KeyLockHash        = "lock.passphrase_hash"
)

// Storage limits. Values beyond MaxSettingBytes are rejected on write and
// fall back to the default on read.
const (
	SettingsPrefix  = "tempo."
	MaxSettingBytes = 4096
)
