// Package solver computes optimal Tower of Hanoi moves, both the classic full
// sequence and the next step from any legal position.
package solver

import (
	"fmt"

	"hanoi/internal/hanoi"
)

// Move relocates the top disk of From onto To.
type Move struct {
	From int
	To   int
}

// String renders the move with one-based rod numbers.
func (m Move) String() string {
	return fmt.Sprintf("rod %d -> rod %d", m.From+1, m.To+1)
}

// Plan returns the 2^n - 1 moves that carry n disks from one rod to another.
func Plan(n, from, to int) []Move {
	if n <= 0 || from == to || !valid(from) || !valid(to) {
		return nil
	}
	moves := make([]Move, 0, 1<<n-1)
	var step func(k, from, to, spare int)
	step = func(k, from, to, spare int) {
		if k == 0 {
			return
		}
		step(k-1, from, spare, to)
		moves = append(moves, Move{From: from, To: to})
		step(k-1, spare, to, from)
	}
	step(n, from, to, spare(from, to))
	return moves
}

// Next returns the first optimal move toward stacking every disk on the goal
// rod. It reports false when the game is already solved.
func Next(g *hanoi.Game) (Move, bool) {
	layout := g.Layout()
	return next(layout, len(layout), hanoi.GoalRod)
}

// Remaining returns the optimal number of moves left to solve g.
func Remaining(g *hanoi.Game) int {
	layout := g.Layout()
	return remaining(layout, len(layout), hanoi.GoalRod)
}

// next finds the first move that gathers disks 1..k on target. layout[i] is
// the rod of the disk with size i+1.
func next(layout []int, k, target int) (Move, bool) {
	for ; k > 0; k-- {
		src := layout[k-1]
		if src == target {
			continue
		}
		if m, ok := next(layout, k-1, spare(src, target)); ok {
			return m, true
		}
		return Move{From: src, To: target}, true
	}
	return Move{}, false
}

func remaining(layout []int, k, target int) int {
	for ; k > 0; k-- {
		src := layout[k-1]
		if src == target {
			continue
		}
		// Clear the smaller disks onto the spare, move disk k, then carry the
		// k-1 stack over as a block.
		return remaining(layout, k-1, spare(src, target)) + 1 + (1<<(k-1) - 1)
	}
	return 0
}

func spare(a, b int) int { return hanoi.RodCount - a - b }

func valid(i int) bool { return i >= 0 && i < hanoi.RodCount }
