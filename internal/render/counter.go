package render

import (
	"fmt"

	"hanoi/internal/hanoi"
)

// CounterText is the move counter label, with the budget when one applies.
func CounterText(g *hanoi.Game) string {
	if !g.MoveLimit() {
		return fmt.Sprintf("Moves: %d (no limit)", g.Moves())
	}
	return fmt.Sprintf("Moves: %d / %d", g.Moves(), g.MaxMoves())
}
