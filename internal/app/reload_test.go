package app

import (
	"testing"

	"hanoi/internal/config"
)

func TestApplyConfigOnlyAppliesChangedSettings(t *testing.T) {
	c, _ := newTestController(t, 3)
	prev := config.DefaultConfig()
	prev.MoveLimit = false
	prev.Theme = "rainbow"
	prev.AutoplayTPS = 9
	c.Game().SetMoveLimit(prev.MoveLimit)

	// The player turns the limit back on from the HUD, then an unrelated
	// setting changes in the file.
	if !c.SetBoolParameter("move_limit", true) {
		t.Fatal("move limit toggle refused")
	}
	next := prev
	next.TPS = 31
	ch := c.ApplyConfig(prev, next)
	if ch.theme || ch.autoplayTPS || ch.moveLimit {
		t.Fatalf("unrelated edit reported changes: %+v", ch)
	}
	if !c.Game().MoveLimit() {
		t.Fatal("HUD move limit must survive an unrelated edit")
	}

	prev, next = next, next
	next.MoveLimit = false
	next.Theme = "mono"
	ch = c.ApplyConfig(prev, next)
	if !ch.moveLimit || !ch.theme || ch.autoplayTPS {
		t.Fatalf("changes = %+v", ch)
	}
	if c.Game().MoveLimit() {
		t.Fatal("an edited move_limit must apply")
	}
}
