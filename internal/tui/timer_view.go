package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/dial"
	"github.com/akyairhashvil/tempo/internal/timer"
	"github.com/akyairhashvil/tempo/internal/util"
)

// Terminal cells are roughly twice as tall as wide; the dial is drawn and
// hit-tested in a square space where one unit equals one row.
const cellAspect = 2.0

// longPressAfter separates a press-and-hold cancel from a tap.
const longPressAfter = 600 * time.Millisecond

// dragState tracks an in-flight mouse press on the timer tab.
type dragState struct {
	down      bool
	moved     bool
	pressedAt time.Time
}

// settingsState holds the settings panel shown in the machine's settings
// status.
type settingsState struct {
	editingPassphrase bool
	passInput         textinput.Model
	status            string
}

func newPassphraseInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "New passphrase (empty to remove)"
	ti.EchoMode = textinput.EchoPassword
	ti.Width = 30
	return ti
}

// dialGeometry derives the dial's center and radius from the window size,
// in square space.
func (m MainModel) dialGeometry() timer.Geometry {
	rows := m.height - 8
	cols := m.width - 4
	if rows < 11 {
		rows = 11
	}
	if cols < 22 {
		cols = 22
	}
	radius := float64(rows-1) / 2
	if half := float64(cols) / (2 * cellAspect); half < radius {
		radius = half
	}
	if radius < 5 {
		radius = 5
	}
	cx := float64(m.width) / 2 / cellAspect
	if cx < radius {
		cx = radius
	}
	return timer.Geometry{
		CenterX: cx,
		CenterY: 2 + radius,
		Radius:  radius,
	}
}

func (m MainModel) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.machine.State()
	if st.Status == timer.StatusSettings {
		return m.updateSettings(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			m.controller.Tap()
		case "up", "+", "=", "k":
			m.adjustBy(5)
		case "down", "-", "j":
			m.adjustBy(-5)
		case "right", "l":
			m.adjustBy(1)
		case "left", "h":
			m.adjustBy(-1)
		case "c":
			prev := m.machine.State()
			m.controller.LongPress()
			m.recordAbandoned(prev)
		case "r":
			prev := m.machine.State()
			m.machine.Apply(timer.Reset{})
			m.recordAbandoned(prev)
		case "s":
			m.controller.FlickUp()
		case "esc":
			m.machine.Apply(timer.EndAdjust{})
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateTimerMouse(msg)
	}
	return m, nil
}

func (m MainModel) updateTimerMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	geo := m.dialGeometry()
	x := float64(msg.X) / cellAspect
	y := float64(msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.controller.FlickUp()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.drag = dragState{down: true, pressedAt: m.now()}

	case msg.Action == tea.MouseActionMotion && m.drag.down:
		if !m.drag.moved {
			m.drag.moved = true
			m.controller.DragStart()
		}
		m.controller.DragMove(x, y)

	case msg.Action == tea.MouseActionRelease && m.drag.down:
		held := m.now().Sub(m.drag.pressedAt)
		switch {
		case m.drag.moved:
			m.controller.DragEnd(geo.InCommitZone(x, y))
		case held >= longPressAfter:
			prev := m.machine.State()
			m.controller.LongPress()
			m.recordAbandoned(prev)
		default:
			m.controller.Tap()
		}
		m.drag = dragState{}
	}
	return m, nil
}

// adjustBy nudges the selected duration from the keyboard by wrapping the
// drag gesture's adjust events.
func (m MainModel) adjustBy(deltaMinutes int) {
	st := m.machine.State()
	if st.Status != timer.StatusIdle && st.Status != timer.StatusAdjusting {
		return
	}
	minutes := util.Clamp(st.Duration/60+deltaMinutes, timer.MinMinutes, timer.MaxMinutes)
	m.machine.Apply(timer.StartAdjust{})
	m.machine.Apply(timer.SetDuration{Minutes: minutes})
	m.machine.Apply(timer.EndAdjust{})
}

func (m MainModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.settings.editingPassphrase {
		return m.updatePassphraseInput(key)
	}

	switch key.String() {
	case "esc", "s", "q":
		m.controller.FlickUp()
	case "+", "=", "up", "k":
		m.bumpDefaultMinutes(5)
	case "-", "down", "j":
		m.bumpDefaultMinutes(-5)
	case "t":
		name := NextTheme(m.repo.GetSetting(m.ctx, config.KeyTheme, m.cfg.Theme))
		SetTheme(name)
		m.err = m.repo.SetSetting(m.ctx, config.KeyTheme, name)
	case "a":
		m.soundOn = !m.soundOn
		m.err = m.repo.SetSetting(m.ctx, config.KeySoundEnabled, boolSetting(m.soundOn))
	case "n":
		m.notifyOn = !m.notifyOn
		m.err = m.repo.SetSetting(m.ctx, config.KeyNotifyEnabled, boolSetting(m.notifyOn))
	case "p":
		m.settings.editingPassphrase = true
		m.settings.passInput = newPassphraseInput()
		m.settings.passInput.Focus()
		m.settings.status = ""
	}
	return m, nil
}

func (m MainModel) updatePassphraseInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.settings.editingPassphrase = false
		return m, nil
	case tea.KeyEnter:
		pass := m.settings.passInput.Value()
		if pass == "" {
			m.err = m.repo.DeleteSetting(m.ctx, config.KeyLockHash)
			m.lock.PassphraseHash = ""
			m.settings.status = "Lock removed"
			m.settings.editingPassphrase = false
			return m, nil
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			m.settings.status = err.Error()
			return m, nil
		}
		hash := util.HashPassphrase(pass)
		if err := m.repo.SetSetting(m.ctx, config.KeyLockHash, hash); err != nil {
			m.err = err
			return m, nil
		}
		m.lock.PassphraseHash = hash
		m.settings.status = "Lock enabled"
		m.settings.editingPassphrase = false
		return m, nil
	}
	var cmd tea.Cmd
	m.settings.passInput, cmd = m.settings.passInput.Update(key)
	return m, cmd
}

// bumpDefaultMinutes changes the default session length, persists it, and
// reflects it on the idle dial.
func (m *MainModel) bumpDefaultMinutes(delta int) {
	st := m.machine.State()
	minutes := util.Clamp(st.Duration/60+delta, timer.MinMinutes, timer.MaxMinutes)
	if err := m.repo.SetSetting(m.ctx, config.KeyDefaultDuration, strconv.Itoa(minutes)); err != nil {
		m.err = err
		return
	}
	m.machine.Apply(timer.CloseSettings{})
	m.adjustBy(minutes - st.Duration/60)
	m.machine.Apply(timer.OpenSettings{})
}

func (m MainModel) viewTimer() string {
	st := m.machine.State()
	if st.Status == timer.StatusSettings {
		return m.viewSettings()
	}

	var b strings.Builder
	b.WriteString(renderDial(st, m.machine.Progress(), m.dialGeometry(), m.width))
	b.WriteString("\n")
	status := FormatTimerStatus(st)
	b.WriteString(centerLine(CurrentTheme.Status.Render(status), m.width))
	b.WriteString("\n")
	hint := "space start/pause  arrows adjust  c cancel  s settings"
	b.WriteString(centerLine(CurrentTheme.Dim.Render(hint), m.width))
	return b.String()
}

func (m MainModel) viewSettings() string {
	t := CurrentTheme
	minutes := m.machine.State().Duration / 60
	lines := []string{
		t.Header.Render("Settings"),
		"",
		fmt.Sprintf("  %s  %s", t.Item.Render("Default session"), t.Highlight.Render(util.FormatMinutesLong(minutes))),
		fmt.Sprintf("  %s  %s", t.Item.Render("Theme          "), t.Highlight.Render(CurrentTheme.Name)),
		fmt.Sprintf("  %s  %s", t.Item.Render("Sound          "), t.Highlight.Render(boolSetting(m.soundOn))),
		fmt.Sprintf("  %s  %s", t.Item.Render("Notifications  "), t.Highlight.Render(boolSetting(m.notifyOn))),
		"",
	}
	if m.settings.editingPassphrase {
		lines = append(lines, "  "+m.settings.passInput.View())
	}
	if m.settings.status != "" {
		lines = append(lines, "  "+t.Dim.Render(m.settings.status))
	}
	lines = append(lines, "", t.Dim.Render("  +/- length  t theme  a sound  n notify  p passphrase  esc back"))
	return strings.Join(lines, "\n")
}

// renderDial draws the countdown as a character-cell circle. The rim shows
// elapsed progress while running and the selected duration while adjusting.
func renderDial(st timer.State, progress float64, geo timer.Geometry, width int) string {
	radius := geo.Radius
	rows := int(2*radius) + 1
	cols := width
	if cols <= 0 {
		cols = int(2*radius*cellAspect) + 1
	}
	topRow := geo.CenterY - radius

	var fillFrac float64
	switch st.Status {
	case timer.StatusRunning, timer.StatusPaused, timer.StatusCompleted:
		fillFrac = progress
	default:
		fillFrac = float64(st.Duration) / 60 / 60 // fraction of one revolution
		if fillFrac > 1 {
			fillFrac = 1
		}
	}

	clock := FormatRemaining(st.Remaining)
	if st.Status == timer.StatusIdle || st.Status == timer.StatusAdjusting || st.Status == timer.StatusCommitting {
		clock = FormatRemaining(st.Duration)
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		y := topRow + float64(row)
		line := make([]rune, 0, cols)
		styled := make([]bool, 0, cols)
		for col := 0; col < cols; col++ {
			x := float64(col) / cellAspect
			dx := x - geo.CenterX
			dy := y - geo.CenterY
			dist := math.Hypot(dx, dy)
			if math.Abs(dist-radius) <= 0.5 {
				angle := dial.AngleFromCenter(x, y, geo.CenterX, geo.CenterY)
				if angle <= fillFrac*2*math.Pi {
					line = append(line, '●')
					styled = append(styled, true)
				} else {
					line = append(line, '·')
					styled = append(styled, false)
				}
				continue
			}
			line = append(line, ' ')
			styled = append(styled, false)
		}
		b.WriteString(styleRimLine(line, styled))
		b.WriteString("\n")
	}

	out := b.String()
	clockRow := int(geo.CenterY - topRow)
	return overlayCentered(out, clockRow, CurrentTheme.Clock.Render(clock), cols)
}

// styleRimLine styles arc cells without breaking column alignment: runs of
// styled and unstyled cells are rendered separately.
func styleRimLine(line []rune, styled []bool) string {
	var b strings.Builder
	start := 0
	for start < len(line) {
		end := start
		for end < len(line) && styled[end] == styled[start] {
			end++
		}
		seg := string(line[start:end])
		if styled[start] {
			b.WriteString(CurrentTheme.DialArc.Render(seg))
		} else {
			b.WriteString(CurrentTheme.Dial.Render(seg))
		}
		start = end
	}
	return b.String()
}

// overlayCentered replaces the middle of one row with centered text.
func overlayCentered(grid string, row int, text string, cols int) string {
	lines := strings.Split(grid, "\n")
	if row < 0 || row >= len(lines) {
		return grid
	}
	pad := (cols - displayWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}
	lines[row] = strings.Repeat(" ", pad) + text
	return strings.Join(lines, "\n")
}

func centerLine(s string, width int) string {
	pad := (width - displayWidth(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
