package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/tempo/internal/config"
)

func TestSettingRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if got := db.GetSetting(ctx, "ui.theme", "default"); got != "default" {
		t.Fatalf("missing key should yield default, got %q", got)
	}
	if err := db.SetSetting(ctx, "ui.theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := db.GetSetting(ctx, "ui.theme", "default"); got != "dracula" {
		t.Fatalf("GetSetting = %q, want dracula", got)
	}

	// Upsert replaces.
	if err := db.SetSetting(ctx, "ui.theme", "default"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}
	if got := db.GetSetting(ctx, "ui.theme", "x"); got != "default" {
		t.Fatalf("upsert not applied, got %q", got)
	}
}

func TestSettingKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, "ui.theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	var key string
	if err := db.DB.QueryRowContext(ctx, "SELECT key FROM settings").Scan(&key); err != nil {
		t.Fatalf("raw read failed: %v", err)
	}
	if !strings.HasPrefix(key, config.SettingsPrefix) {
		t.Fatalf("stored key %q lacks namespace prefix", key)
	}
}

func TestOversizedSettingRejected(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	big := strings.Repeat("x", config.MaxSettingBytes+1)
	err := db.SetSetting(ctx, "blob", big)
	if err == nil {
		t.Fatalf("expected oversized write to fail")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError, got %T", err)
	}
}

func TestOversizedStoredValueFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	// Bypass the guard to simulate a value written by a buggy build.
	big := strings.Repeat("x", config.MaxSettingBytes+1)
	if _, err := db.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?)",
		config.SettingsPrefix+"blob", big); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}
	if got := db.GetSetting(ctx, "blob", "fallback"); got != "fallback" {
		t.Fatalf("oversized stored value should fall back, got %d bytes", len(got))
	}
}

func TestDeleteSetting(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, "ui.theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.DeleteSetting(ctx, "ui.theme"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if got := db.GetSetting(ctx, "ui.theme", "gone"); got != "gone" {
		t.Fatalf("setting survived delete: %q", got)
	}
}
