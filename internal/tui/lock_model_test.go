package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/tempo/internal/util"
)

func TestLockUnlocksWithCorrectPassphrase(t *testing.T) {
	l := newLockModel(util.HashPassphrase("Str0ngPass"))
	l.Locked = true
	now := time.Now()

	l.PassphraseInput.SetValue("Str0ngPass")
	l, _ = l.Update(keyMsg("enter"), now)
	if l.Locked {
		t.Fatalf("correct passphrase should unlock")
	}
	if l.Attempts != 0 {
		t.Fatalf("attempts should reset, got %d", l.Attempts)
	}
}

func TestLockRejectsWrongPassphrase(t *testing.T) {
	l := newLockModel(util.HashPassphrase("Str0ngPass"))
	l.Locked = true
	now := time.Now()

	l.PassphraseInput.SetValue("nope")
	l, _ = l.Update(keyMsg("enter"), now)
	if !l.Locked {
		t.Fatalf("wrong passphrase must stay locked")
	}
	if l.Attempts != 1 || l.Message == "" {
		t.Fatalf("expected a failure message and attempt count")
	}
}

func TestLockBacksOffAfterThreeFailures(t *testing.T) {
	l := newLockModel(util.HashPassphrase("Str0ngPass"))
	l.Locked = true
	now := time.Now()

	for i := 0; i < 3; i++ {
		l.PassphraseInput.SetValue("nope")
		l, _ = l.Update(keyMsg("enter"), now)
	}
	if !now.Before(l.LockUntil) {
		t.Fatalf("expected a lockout window after three failures")
	}

	// Even the right passphrase is ignored during the lockout.
	l.PassphraseInput.SetValue("Str0ngPass")
	l, _ = l.Update(keyMsg("enter"), now)
	if !l.Locked {
		t.Fatalf("lockout must hold until it expires")
	}

	l.PassphraseInput.SetValue("Str0ngPass")
	l, _ = l.Update(keyMsg("enter"), l.LockUntil.Add(time.Second))
	if l.Locked {
		t.Fatalf("after the lockout the right passphrase should work")
	}
}

func TestAutoLockRequiresHash(t *testing.T) {
	l := newLockModel("")
	l.LastInput = time.Now().Add(-time.Hour)
	if l.MaybeAutoLock(time.Now()) {
		t.Fatalf("no passphrase means no auto-lock")
	}

	l = newLockModel("aa:bb")
	l.LastInput = time.Now().Add(-time.Hour)
	if !l.MaybeAutoLock(time.Now()) {
		t.Fatalf("expected auto-lock after the inactivity window")
	}
}

func TestLockViewRendersMessage(t *testing.T) {
	l := newLockModel("aa:bb")
	l.Locked = true
	l.Message = "Wrong passphrase"
	if !containsANSIStripped(l.View(80, 24), "Wrong passphrase") {
		t.Fatalf("lock view should show the message")
	}
}
