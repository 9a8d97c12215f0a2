package app

import "hanoi/internal/config"

// settingsChange lists the live settings a reload altered.
type settingsChange struct {
	theme       bool
	autoplayTPS bool
	moveLimit   bool
}

func diffSettings(prev, next config.Config) settingsChange {
	return settingsChange{
		theme:       prev.Theme != next.Theme,
		autoplayTPS: prev.AutoplayTPS != next.AutoplayTPS,
		moveLimit:   prev.MoveLimit != next.MoveLimit,
	}
}

// ApplyConfig applies the game settings that differ between the previously
// resolved configuration and next. A move limit toggled on the HUD survives
// edits that leave move_limit alone.
func (c *Controller) ApplyConfig(prev, next config.Config) settingsChange {
	ch := diffSettings(prev, next)
	if ch.moveLimit {
		c.game.SetMoveLimit(next.MoveLimit)
		c.logger.Info("move limit changed", "enabled", next.MoveLimit)
	}
	return ch
}
