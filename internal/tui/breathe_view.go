package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempo/internal/breath"
)

// BreatheModel is the guided 4-7-8 breathing tab.
type BreatheModel struct {
	ex *breath.Exercise
}

func newBreatheModel(ex *breath.Exercise) BreatheModel {
	return BreatheModel{ex: ex}
}

func (m BreatheModel) Update(msg tea.Msg) (BreatheModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case " ", "enter":
		if m.ex.Running() {
			m.ex.Stop()
		} else {
			m.ex.Start()
		}
	case "esc":
		m.ex.Stop()
	}
	return m, nil
}

func (m BreatheModel) View(width, height int) string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Breathe"))
	b.WriteString("\n\n")

	if !m.ex.Running() {
		b.WriteString(t.Dim.Render("  4-7-8 breathing: inhale 4s, hold 7s, exhale 8s."))
		b.WriteString("\n")
		b.WriteString(t.Dim.Render("  Press space to begin."))
		return b.String()
	}

	phase := m.ex.Phase()
	b.WriteString(renderBreathRing(phase, m.ex.PhaseProgress(), width))
	b.WriteString("\n")
	line := fmt.Sprintf("%s  %ds", strings.ToUpper(phase.String()), m.ex.PhaseRemaining())
	b.WriteString(centerLine(t.Status.Render(line), width))
	b.WriteString("\n")
	b.WriteString(centerLine(t.Dim.Render(fmt.Sprintf("cycle %d", m.ex.Cycles()+1)), width))
	b.WriteString("\n")
	b.WriteString(centerLine(t.Dim.Render("space stop"), width))
	return b.String()
}

// renderBreathRing draws a circle that grows on the inhale and shrinks on
// the exhale, holding full size in between.
func renderBreathRing(phase breath.Phase, progress float64, width int) string {
	const minR, maxR = 2.0, 6.0
	var radius float64
	switch phase {
	case breath.PhaseInhale:
		radius = minR + progress*(maxR-minR)
	case breath.PhaseHold:
		radius = maxR
	default:
		radius = maxR - progress*(maxR-minR)
	}

	rows := int(2*maxR) + 1
	cols := width
	if cols <= 0 {
		cols = int(2*maxR*cellAspect) + 1
	}
	cx := float64(cols) / 2 / cellAspect
	cy := maxR

	var b strings.Builder
	for row := 0; row < rows; row++ {
		line := make([]rune, cols)
		for col := 0; col < cols; col++ {
			x := float64(col) / cellAspect
			dist := math.Hypot(x-cx, float64(row)-cy)
			switch {
			case math.Abs(dist-radius) <= 0.5:
				line[col] = '●'
			default:
				line[col] = ' '
			}
		}
		b.WriteString(CurrentTheme.DialArc.Render(strings.TrimRight(string(line), " ")))
		b.WriteString("\n")
	}
	return b.String()
}
