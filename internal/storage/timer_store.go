package storage

import (
	"context"
	"encoding/json"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/timer"
	"github.com/akyairhashvil/tempo/internal/util"
)

// The timer machine persists through the settings table as an opaque JSON
// record. The machine is synchronous and single-threaded, so these methods
// use a background context rather than threading one through the reducer.

var _ timer.Store = (*Database)(nil)

// LoadSnapshot reads the persisted countdown, if any. Corrupt or oversized
// payloads count as no snapshot.
func (d *Database) LoadSnapshot() (timer.Snapshot, bool) {
	raw := d.GetSetting(context.Background(), config.KeyTimerState, "")
	if raw == "" {
		return timer.Snapshot{}, false
	}
	var snap timer.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		util.LogError("decode timer snapshot", err)
		return timer.Snapshot{}, false
	}
	return snap, true
}

// SaveSnapshot writes the countdown, best effort.
func (d *Database) SaveSnapshot(snap timer.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return d.SetSetting(context.Background(), config.KeyTimerState, string(data))
}

// ClearSnapshot removes the persisted countdown.
func (d *Database) ClearSnapshot() error {
	return d.DeleteSetting(context.Background(), config.KeyTimerState)
}
