package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hanoi/internal/app"
	"hanoi/internal/hanoi"
	"hanoi/internal/theme"
)

func newModel(t *testing.T, n int) Model {
	t.Helper()
	g, err := hanoi.New(n)
	if err != nil {
		t.Fatalf("hanoi.New(%d): %v", n, err)
	}
	return New(app.NewController(g, nil, nil), theme.Default(), 10)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func mouse(x int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 4, Action: action, Button: tea.MouseButtonLeft}
}

func TestKeysMoveDisks(t *testing.T) {
	m := newModel(t, 3)
	m = send(t, m, key("1"), key("3"))
	g := m.ctrl.Game()
	if g.Height(2) != 1 || g.Moves() != 1 {
		t.Fatalf("height=%d moves=%d", g.Height(2), g.Moves())
	}

	m = send(t, m, key("1"), key("3"))
	if m.notice == "" || g.Moves() != 1 {
		t.Fatal("placing a larger disk on a smaller one should be refused with a notice")
	}

	m = send(t, m, key("2"))
	if m.notice != "Rod 2 is empty." {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestMouseDragBetweenColumns(t *testing.T) {
	m := newModel(t, 3)
	w := m.columnWidth()
	m = send(t, m, mouse(w/2, tea.MouseActionPress))
	if _, rod, ok := m.ctrl.Game().Lifted(); !ok || rod != 0 {
		t.Fatal("press on the first column should lift from rod 1")
	}
	m = send(t, m,
		tea.MouseMsg{X: w + 1, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: w + 2, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
	)
	if m.ctrl.Game().Height(1) != 1 || m.hover != 1 {
		t.Fatalf("height=%d hover=%d", m.ctrl.Game().Height(1), m.hover)
	}

	m = send(t, m, mouse(w+1, tea.MouseActionPress), mouse(10*w, tea.MouseActionRelease))
	if m.ctrl.Game().Height(1) != 1 || m.ctrl.Game().Moves() != 1 {
		t.Fatal("releasing outside the board should return the disk")
	}
}

func TestWinAndPlayAgain(t *testing.T) {
	m := newModel(t, 3)
	for _, mv := range [][2]string{{"1", "3"}, {"1", "2"}, {"3", "2"}, {"1", "3"}, {"2", "1"}, {"2", "3"}, {"1", "3"}} {
		m = send(t, m, key(mv[0]), key(mv[1]))
	}
	if !m.ctrl.Game().Won() {
		t.Fatal("expected the puzzle to be solved")
	}
	if !strings.Contains(m.View(), "You Won!") {
		t.Fatal("view should announce the win")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Game().Moves() != 0 || m.ctrl.PromptKind() != app.PromptNone {
		t.Fatal("enter should start a new game")
	}
}

func TestResizeKeys(t *testing.T) {
	m := newModel(t, 3)
	m = send(t, m, key("+"), key("+"))
	if m.ctrl.Game().Disks() != 5 {
		t.Fatalf("disks = %d", m.ctrl.Game().Disks())
	}
	m = send(t, m, key("-"), key("-"), key("-"))
	if m.ctrl.Game().Disks() != 3 {
		t.Fatalf("disks should stop at 3, got %d", m.ctrl.Game().Disks())
	}
}

func TestAutoplayTicks(t *testing.T) {
	m := newModel(t, 3)
	next, cmd := m.Update(key("a"))
	m = next.(Model)
	if cmd == nil || !m.ctrl.Autoplaying() {
		t.Fatal("autoplay should schedule a tick")
	}
	for i := 0; i < 20 && m.ctrl.Autoplaying(); i++ {
		m = send(t, m, autoTick{gen: m.autoGen})
	}
	if !m.ctrl.Game().Won() || m.ctrl.Game().Moves() != 7 {
		t.Fatalf("autoplay finished with moves=%d", m.ctrl.Game().Moves())
	}
}

func TestAutoplayRestartDropsStaleTicks(t *testing.T) {
	m := newModel(t, 3)
	m = send(t, m, key("a"))
	first := m.autoGen
	m = send(t, m, key("a"), key("a"))
	if !m.ctrl.Autoplaying() || m.autoGen == first {
		t.Fatalf("restart should begin a new run: gen %d -> %d", first, m.autoGen)
	}

	next, cmd := m.Update(autoTick{gen: first})
	m = next.(Model)
	if cmd != nil || m.ctrl.Game().Moves() != 0 {
		t.Fatal("a tick from the previous run must neither move nor re-arm")
	}

	next, cmd = m.Update(autoTick{gen: m.autoGen})
	m = next.(Model)
	if cmd == nil || m.ctrl.Game().Moves() != 1 {
		t.Fatalf("current tick should move once and re-arm, moves=%d", m.ctrl.Game().Moves())
	}
}

func TestViewShowsBoard(t *testing.T) {
	m := newModel(t, 3)
	m = send(t, m, key("h"))
	view := m.View()
	for _, want := range []string{"Tower of Hanoi", "Moves: 0 / 7", "Hint: rod 1 -> rod 3", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.rodAt(-1) != hanoi.NoRod || m.rodAt(3*m.columnWidth()) != hanoi.NoRod {
		t.Fatal("columns outside the board map to no rod")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newModel(t, 3).Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}
