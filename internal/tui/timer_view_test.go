package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/timer"
)

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestKeyboardAdjustsDuration(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, keyMsg("up"))
	if st := m.machine.State(); st.Duration != 30*60 {
		t.Fatalf("up should add 5 minutes, got %d", st.Duration)
	}
	m = drive(t, m, keyMsg("down"), keyMsg("down"))
	if st := m.machine.State(); st.Duration != 20*60 {
		t.Fatalf("down twice should land on 20 minutes, got %d", st.Duration)
	}
	m = drive(t, m, keyMsg("right"))
	if st := m.machine.State(); st.Duration != 21*60 {
		t.Fatalf("right should add 1 minute, got %d", st.Duration)
	}
	if st := m.machine.State(); st.Status != timer.StatusIdle {
		t.Fatalf("keyboard adjust should settle back to idle, got %v", st.Status)
	}
}

func TestKeyboardAdjustIgnoredWhileRunning(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, keyMsg(" "), keyMsg("up"))
	if st := m.machine.State(); st.Duration != 25*60 {
		t.Fatalf("duration must stay frozen while running, got %d", st.Duration)
	}
}

func TestSpacePausesAndResumes(t *testing.T) {
	m, clock := newTestModel(t)
	m = drive(t, m, keyMsg(" "))
	clock.Advance(10 * time.Second)
	m = drive(t, m, TickMsg(clock.Now()), keyMsg(" "))
	st := m.machine.State()
	if st.Status != timer.StatusPaused {
		t.Fatalf("expected paused, got %v", st.Status)
	}
	frozen := st.Remaining

	clock.Advance(time.Hour)
	m = drive(t, m, TickMsg(clock.Now()), keyMsg(" "))
	st = m.machine.State()
	if st.Status != timer.StatusRunning {
		t.Fatalf("expected running after resume, got %v", st.Status)
	}
	if st.Remaining != frozen {
		t.Fatalf("pause must freeze remaining: %d != %d", st.Remaining, frozen)
	}
}

func TestCancelRecordsAbandonedSession(t *testing.T) {
	m, clock := newTestModel(t)
	ctx := context.Background()

	m = drive(t, m, keyMsg(" "))
	clock.Advance(5 * time.Minute)
	m = drive(t, m, TickMsg(clock.Now()), keyMsg("c"))

	if st := m.machine.State(); st.Status != timer.StatusIdle {
		t.Fatalf("cancel should return to idle, got %v", st.Status)
	}
	sessions, err := m.repo.GetSessionsForDay(ctx, clock.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("GetSessionsForDay failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 abandoned session, got %d", len(sessions))
	}
	if sessions[0].Completed || sessions[0].ElapsedSeconds != 5*60 {
		t.Fatalf("abandoned session recorded wrong: %+v", sessions[0])
	}
}

func TestMouseDragSelectsDurationOnRim(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	// The dial centers at column 40, row 12.5 with radius 10.5 rows; the
	// eastern rim sits near column 61.
	m = drive(t, m,
		mouse(61, 12, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(61, 12, tea.MouseActionMotion, tea.MouseButtonLeft),
	)
	st := m.machine.State()
	if st.Status != timer.StatusAdjusting {
		t.Fatalf("drag on the dial should adjust, got %v", st.Status)
	}
	if st.Duration != 15*60 {
		t.Fatalf("eastern rim is a quarter turn, want 15 minutes, got %d seconds", st.Duration)
	}

	m = drive(t, m, mouse(61, 12, tea.MouseActionRelease, tea.MouseButtonLeft))
	st = m.machine.State()
	if st.Status != timer.StatusIdle {
		t.Fatalf("release outside the commit zone should abandon, got %v", st.Status)
	}
	if st.Duration != 15*60 {
		t.Fatalf("abandoning should keep the selected duration, got %d", st.Duration)
	}
}

func TestMouseDragToCenterCommits(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m = drive(t, m,
		mouse(61, 12, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(61, 12, tea.MouseActionMotion, tea.MouseButtonLeft),
		mouse(40, 12, tea.MouseActionMotion, tea.MouseButtonLeft),
	)
	if st := m.machine.State(); st.Status != timer.StatusCommitting {
		t.Fatalf("dragging into the center should arm the commit, got %v", st.Status)
	}

	m = drive(t, m, mouse(40, 12, tea.MouseActionRelease, tea.MouseButtonLeft))
	st := m.machine.State()
	if st.Status != timer.StatusRunning {
		t.Fatalf("release in the center should start, got %v", st.Status)
	}
	if st.Duration != 15*60 {
		t.Fatalf("committed duration wrong: %d", st.Duration)
	}
}

func TestMouseTapStartsAndPauses(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m = drive(t, m,
		mouse(40, 12, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(40, 12, tea.MouseActionRelease, tea.MouseButtonLeft),
	)
	if st := m.machine.State(); st.Status != timer.StatusRunning {
		t.Fatalf("tap from idle should start, got %v", st.Status)
	}

	m = drive(t, m,
		mouse(40, 12, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(40, 12, tea.MouseActionRelease, tea.MouseButtonLeft),
	)
	if st := m.machine.State(); st.Status != timer.StatusPaused {
		t.Fatalf("tap while running should pause, got %v", st.Status)
	}
}

func TestMouseLongPressCancels(t *testing.T) {
	m, clock := newTestModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}, keyMsg(" "))

	m = drive(t, m, mouse(40, 12, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.Advance(time.Second)
	m = drive(t, m, mouse(40, 12, tea.MouseActionRelease, tea.MouseButtonLeft))

	if st := m.machine.State(); st.Status != timer.StatusIdle {
		t.Fatalf("long press should cancel, got %v", st.Status)
	}
}

func TestWheelTogglesSettings(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, mouse(40, 12, tea.MouseActionPress, tea.MouseButtonWheelUp))
	if st := m.machine.State(); st.Status != timer.StatusSettings {
		t.Fatalf("wheel up should open settings, got %v", st.Status)
	}
	m = drive(t, m, keyMsg("esc"))
	if st := m.machine.State(); st.Status != timer.StatusIdle {
		t.Fatalf("esc should close settings, got %v", st.Status)
	}
}

func TestSettingsTogglesPersist(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m = drive(t, m, keyMsg("s")) // open settings

	m = drive(t, m, keyMsg("a"))
	if m.soundOn {
		t.Fatalf("sound should toggle off")
	}
	if got := m.repo.GetSetting(ctx, config.KeySoundEnabled, ""); got != "off" {
		t.Fatalf("sound setting not persisted, got %q", got)
	}

	m = drive(t, m, keyMsg("t"))
	if got := m.repo.GetSetting(ctx, config.KeyTheme, ""); got != "dracula" {
		t.Fatalf("theme setting not persisted, got %q", got)
	}
	SetTheme("default")

	m = drive(t, m, keyMsg("+"))
	if st := m.machine.State(); st.Duration != 30*60 {
		t.Fatalf("+ should raise the default session to 30 minutes, got %d", st.Duration)
	}
	if got := m.repo.GetSetting(ctx, config.KeyDefaultDuration, ""); got != "30" {
		t.Fatalf("default duration not persisted, got %q", got)
	}
	if st := m.machine.State(); st.Status != timer.StatusSettings {
		t.Fatalf("adjusting the default should stay in settings, got %v", st.Status)
	}
}

func TestSettingsPassphraseFlow(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m = drive(t, m, keyMsg("s"), keyMsg("p"))
	if !m.settings.editingPassphrase {
		t.Fatalf("p should open the passphrase input")
	}

	m = drive(t, m, keyMsg("weak"), keyMsg("enter"))
	if !m.settings.editingPassphrase {
		t.Fatalf("weak passphrase must be rejected and stay in the input")
	}
	if m.settings.status == "" {
		t.Fatalf("expected a validation message")
	}

	m.settings.passInput.SetValue("Str0ngPass")
	m = drive(t, m, keyMsg("enter"))
	if m.settings.editingPassphrase {
		t.Fatalf("valid passphrase should close the input")
	}
	if got := m.repo.GetSetting(ctx, config.KeyLockHash, ""); got == "" {
		t.Fatalf("lock hash not persisted")
	}
	if m.lock.PassphraseHash == "" {
		t.Fatalf("lock model should pick up the new hash")
	}
}

func TestDialViewShowsClock(t *testing.T) {
	m, _ := newTestModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	view := m.viewTimer()
	if view == "" {
		t.Fatalf("expected non-empty dial view")
	}
	if !containsANSIStripped(view, "25:00") {
		t.Fatalf("idle dial should show the selected duration")
	}
}
