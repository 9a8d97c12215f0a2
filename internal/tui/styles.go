package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hanoi/internal/theme"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// palette maps a theme onto terminal styles.
type palette struct {
	rod   lipgloss.Style
	hint  lipgloss.Style
	base  lipgloss.Style
	held  lipgloss.Style
	theme theme.Theme
}

func newPalette(th theme.Theme) palette {
	return palette{
		rod:   lipgloss.NewStyle().Foreground(colorGray),
		hint:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hex(th.Hint))),
		base:  lipgloss.NewStyle().Foreground(colorDim),
		held:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hex(th.Dragged))),
		theme: th,
	}
}

func (p palette) disk(size, total int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hex(p.theme.DiskColor(size, total))))
}
