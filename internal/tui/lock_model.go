package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/util"
)

// LockModel gates the whole UI behind the optional passphrase. With no
// hash configured it never locks.
type LockModel struct {
	Locked          bool
	Message         string
	PassphraseHash  string
	PassphraseInput textinput.Model
	LastInput       time.Time
	AutoLockAfter   time.Duration
	Attempts        int
	LockUntil       time.Time
}

func newLockModel(hash string) LockModel {
	ti := textinput.New()
	ti.Placeholder = "Passphrase"
	ti.EchoMode = textinput.EchoPassword
	ti.Width = 30
	ti.Focus()
	return LockModel{
		PassphraseHash:  hash,
		PassphraseInput: ti,
		AutoLockAfter:   config.AutoLockAfter,
		LastInput:       time.Now(),
	}
}

// Touch records user activity for the auto-lock clock.
func (l *LockModel) Touch(now time.Time) {
	l.LastInput = now
}

// MaybeAutoLock engages the lock after the inactivity window and reports
// whether the UI is currently locked.
func (l *LockModel) MaybeAutoLock(now time.Time) bool {
	if l.PassphraseHash == "" {
		return false
	}
	if !l.Locked && now.Sub(l.LastInput) >= l.AutoLockAfter {
		l.Locked = true
		l.PassphraseInput.SetValue("")
	}
	return l.Locked
}

func (l LockModel) Update(msg tea.Msg, now time.Time) (LockModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	if key.Type != tea.KeyEnter {
		var cmd tea.Cmd
		l.PassphraseInput, cmd = l.PassphraseInput.Update(msg)
		return l, cmd
	}

	if now.Before(l.LockUntil) {
		l.Message = fmt.Sprintf("Locked out for %s", FormatDuration(l.LockUntil.Sub(now).Round(time.Second)))
		return l, nil
	}

	pass := l.PassphraseInput.Value()
	l.PassphraseInput.SetValue("")
	if util.VerifyPassphrase(pass, l.PassphraseHash) {
		l.Locked = false
		l.Attempts = 0
		l.Message = ""
		l.LastInput = now
		return l, nil
	}

	l.Attempts++
	l.Message = "Wrong passphrase"
	// Back off after repeated failures.
	if l.Attempts >= 3 {
		l.LockUntil = now.Add(30 * time.Second)
		l.Message = "Too many attempts, hold on"
	}
	return l, nil
}

func (l LockModel) View(width, height int) string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Locked"))
	b.WriteString("\n\n")
	b.WriteString(l.PassphraseInput.View())
	if l.Message != "" {
		b.WriteString("\n")
		b.WriteString(t.Warn.Render(l.Message))
	}
	content := b.String()
	if width > 0 && height > 0 {
		return t.Base.Render(content)
	}
	return content
}
