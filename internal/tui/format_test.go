package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/tempo/internal/timer"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{25 * time.Minute, "25m"},
		{time.Hour, "1h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatRemainingKeepsWholeMinutes(t *testing.T) {
	if got := FormatRemaining(120 * 60); got != "120:00" {
		t.Fatalf("two hours should read 120:00, got %q", got)
	}
	if got := FormatRemaining(90*60 + 5); got != "90:05" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatTimerStatus(t *testing.T) {
	tests := []struct {
		st   timer.State
		want string
	}{
		{timer.State{Status: timer.StatusIdle, Duration: 1500}, "Ready - 25:00"},
		{timer.State{Status: timer.StatusRunning, Remaining: 600}, "Focusing - 10:00 remaining"},
		{timer.State{Status: timer.StatusPaused, Remaining: 42}, "Paused - 00:42 remaining"},
		{timer.State{Status: timer.StatusCompleted}, "Done. Press space to dismiss"},
		{timer.State{Status: timer.StatusCommitting, Duration: 900}, "Release to start 15:00"},
	}
	for _, tt := range tests {
		if got := FormatTimerStatus(tt.st); got != tt.want {
			t.Errorf("FormatTimerStatus(%v) = %q, want %q", tt.st.Status, got, tt.want)
		}
	}
}
