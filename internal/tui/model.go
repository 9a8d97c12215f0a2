// Package tui plays the puzzle in a terminal. Rods are columns; a mouse press
// on a column lifts its top disk and the release picks the destination, the
// same gesture as dragging in the window. Number keys do the same from the
// keyboard.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hanoi/internal/app"
	"hanoi/internal/config"
	"hanoi/internal/hanoi"
	"hanoi/internal/render"
	"hanoi/internal/theme"
)

// autoTick carries the autoplay run it belongs to; ticks from an earlier run
// are dropped.
type autoTick struct{ gen int }

// Model is the bubbletea model for a terminal game.
type Model struct {
	ctrl     *app.Controller
	palette  palette
	interval time.Duration
	hover    int
	notice   string
	autoGen  int
}

// New builds a model around ctrl.
func New(ctrl *app.Controller, th theme.Theme, autoplayTPS int) Model {
	if autoplayTPS <= 0 {
		autoplayTPS = 1
	}
	return Model{
		ctrl:     ctrl,
		palette:  newPalette(th),
		interval: time.Second / time.Duration(autoplayTPS),
		hover:    hanoi.NoRod,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.autoGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return autoTick{gen: gen} })
}

// columnWidth is the width of one rod column, wide enough for the largest disk.
func (m Model) columnWidth() int {
	return 2*m.ctrl.Game().Disks() + 5
}

// rodAt maps a terminal column to a rod.
func (m Model) rodAt(x int) int {
	if x < 0 {
		return hanoi.NoRod
	}
	rod := x / m.columnWidth()
	if rod >= hanoi.RodCount {
		return hanoi.NoRod
	}
	return rod
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case autoTick:
		if msg.gen != m.autoGen || !m.ctrl.Autoplaying() {
			return m, nil
		}
		m.ctrl.AutoStep()
		if m.ctrl.Autoplaying() {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		if _, ok := m.ctrl.Prompt(); ok {
			m.ctrl.Choose(0)
		}
	case "esc":
		m.ctrl.Game().Cancel()
	case "r":
		m.ctrl.Reset()
	case "h":
		if !m.ctrl.ShowHint() {
			m.notice = "No hint available."
		}
	case "a":
		m.ctrl.ToggleAutoplay()
		if m.ctrl.Autoplaying() {
			m.autoGen++
			return m, m.tick()
		}
	case "m":
		m.ctrl.ToggleMoveLimit()
	case "+", "=":
		m.resize(1)
	case "-", "_":
		m.resize(-1)
	case "1", "2", "3":
		m.pick(int(key[0] - '1'))
	}
	return m, nil
}

func (m *Model) resize(delta int) {
	n := m.ctrl.Game().Disks() + delta
	if n < config.PromptMinDisks || n > config.PromptMaxDisks {
		return
	}
	if err := m.ctrl.SetDisks(n); err != nil {
		m.notice = err.Error()
	}
}

// pick lifts from rod when nothing is held and drops onto it otherwise.
func (m *Model) pick(rod int) {
	if m.ctrl.Autoplaying() {
		return
	}
	if _, _, held := m.ctrl.Game().Lifted(); held {
		m.drop(rod)
		return
	}
	if err := m.ctrl.Lift(rod); err != nil && errors.Is(err, hanoi.ErrEmptyRod) {
		m.notice = fmt.Sprintf("Rod %d is empty.", rod+1)
	}
}

func (m *Model) drop(rod int) {
	if out := m.ctrl.Drop(rod); out == hanoi.OutcomeRejected {
		m.notice = "A disk cannot go on a smaller one."
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rod := m.rodAt(msg.X)
	m.hover = rod
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.notice = ""
		if rod == hanoi.NoRod || m.ctrl.Autoplaying() {
			return m, nil
		}
		if _, ok := m.ctrl.Prompt(); ok {
			return m, nil
		}
		if err := m.ctrl.Lift(rod); err != nil && errors.Is(err, hanoi.ErrEmptyRod) {
			m.notice = fmt.Sprintf("Rod %d is empty.", rod+1)
		}
	case tea.MouseActionRelease:
		if _, _, held := m.ctrl.Game().Lifted(); held {
			m.drop(rod)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	g := m.ctrl.Game()

	b.WriteString(styleTitle.Render("Tower of Hanoi"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	b.WriteString(styleValue.Render(render.CounterText(g)))
	if rec, ok := m.ctrl.Best(); ok {
		b.WriteString(styleDim.Render(fmt.Sprintf("   best: %d", rec.Moves)))
	}
	b.WriteString("\n")

	if mv, ok := m.ctrl.Hint(); ok {
		b.WriteString(styleWarning.Render("Hint: " + mv.String()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(styleWarning.Render(m.notice))
		b.WriteString("\n")
	}
	if p, ok := m.ctrl.Prompt(); ok {
		style := styleSuccess
		if m.ctrl.PromptKind() == app.PromptLost {
			style = styleError
		}
		b.WriteString("\n")
		b.WriteString(style.Render(p.Title + " " + p.Message))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("⏎ play again"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	auto := "a autoplay"
	if m.ctrl.Autoplaying() {
		auto = "a stop"
	}
	b.WriteString(styleDim.Render("drag or 1/2/3 move  h hint  " + auto + "  r reset  +/- disks  m limit  q quit"))
	return b.String()
}

func (m Model) renderBoard() string {
	g := m.ctrl.Game()
	width := m.columnWidth()
	held, from, holding := g.Lifted()
	hint, hasHint := m.ctrl.Hint()

	var b strings.Builder

	// The held disk floats above its rod.
	for rod := 0; rod < hanoi.RodCount; rod++ {
		if holding && rod == from {
			b.WriteString(m.palette.held.Render(center(bar(held.Size), width)))
			continue
		}
		b.WriteString(strings.Repeat(" ", width))
	}
	b.WriteString("\n")

	stacks := make([][]hanoi.Disk, hanoi.RodCount)
	for rod := range stacks {
		stacks[rod] = g.Rod(rod)
		if holding && rod == from {
			stacks[rod] = stacks[rod][:len(stacks[rod])-1]
		}
	}

	for level := g.Disks(); level >= 0; level-- {
		for rod := 0; rod < hanoi.RodCount; rod++ {
			if level < len(stacks[rod]) {
				d := stacks[rod][level]
				b.WriteString(m.palette.disk(d.Size, g.Disks()).Render(center(bar(d.Size), width)))
				continue
			}
			style := m.palette.rod
			if hasHint && (rod == hint.From || rod == hint.To) {
				style = m.palette.hint
			}
			b.WriteString(style.Render(center("│", width)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.palette.base.Render(strings.Repeat("▀", width*hanoi.RodCount)))
	b.WriteString("\n")
	for rod := 0; rod < hanoi.RodCount; rod++ {
		label := center(fmt.Sprintf("%d", rod+1), width)
		if rod == m.hover {
			b.WriteString(styleTitle.Render(label))
			continue
		}
		b.WriteString(styleDim.Render(label))
	}
	b.WriteString("\n")
	return b.String()
}

// bar draws a disk of the given size.
func bar(size int) string {
	return strings.Repeat("█", 2*size+1)
}

// center pads s to width cells.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
