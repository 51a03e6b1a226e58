package storage

import (
	"context"

	"github.com/akyairhashvil/tempo/internal/config"
)

// GetSetting reads a namespaced setting, returning def when the key is
// missing, unreadable, or its value exceeds the size cap. Storage
// problems never surface to the caller; the in-memory state stays
// authoritative.
func (d *Database) GetSetting(ctx context.Context, key, def string) string {
	var value *string
	err := d.DB.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", config.SettingsPrefix+key).Scan(&value)
	if err != nil || value == nil {
		return def
	}
	if len(*value) > config.MaxSettingBytes {
		return def
	}
	return *value
}

// SetSetting upserts a namespaced setting. Oversized values are rejected.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if len(value) > config.MaxSettingBytes {
		return &OpError{Op: "set", Resource: "setting", Err: errValueTooLarge}
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		config.SettingsPrefix+key, value)
	if err != nil {
		return &OpError{Op: "set", Resource: "setting", Err: err}
	}
	return nil
}

// DeleteSetting removes a namespaced setting if present.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx,
		"DELETE FROM settings WHERE key = ?", config.SettingsPrefix+key)
	if err != nil {
		return &OpError{Op: "delete", Resource: "setting", Err: err}
	}
	return nil
}
