package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Status    lipgloss.Style
	Dial      lipgloss.Style
	DialArc   lipgloss.Style
	Item      lipgloss.Style
	DoneItem  lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Warn      lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Dial:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DialArc:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Dial:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		DialArc:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// NextTheme returns the theme name after the given one, cycling in a
// stable order.
func NextTheme(name string) string {
	order := []string{"default", "dracula"}
	for i, n := range order {
		if n == name {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
