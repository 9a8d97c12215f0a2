// Package hanoi models the Tower of Hanoi board: three rods of disks, the disk
// currently held by the player, and the move counter. It has no rendering or
// input dependencies so every rule can be exercised headlessly.
package hanoi

import (
	"errors"
	"fmt"

	"hanoi/internal/core"
)

const (
	// RodCount is the number of rods on the board.
	RodCount = 3
	// MinDisks and MaxDisks bound the supported disk counts.
	MinDisks = 1
	MaxDisks = 10
	// NoRod marks a position that is not over any rod.
	NoRod = -1
	// GoalRod is the rod every disk must reach.
	GoalRod = RodCount - 1
)

var (
	// ErrDiskCount rejects a disk count outside [MinDisks, MaxDisks].
	ErrDiskCount = errors.New("hanoi: disk count out of range")
	// ErrRod rejects a rod index outside [0, RodCount).
	ErrRod = errors.New("hanoi: rod index out of range")
	// ErrEmptyRod is returned when lifting from a rod with no disks.
	ErrEmptyRod = errors.New("hanoi: rod is empty")
	// ErrHolding is returned when lifting while a disk is already held.
	ErrHolding = errors.New("hanoi: a disk is already lifted")
	// ErrFinished is returned for input after the game was won or lost.
	ErrFinished = errors.New("hanoi: game is over")
)

// Status is the lifecycle state of a game.
type Status int

const (
	// StatusPlaying accepts moves.
	StatusPlaying Status = iota
	// StatusWon means every disk reached the goal rod.
	StatusWon
	// StatusLost means the move budget ran out first.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome describes what a move attempt did.
type Outcome int

const (
	// OutcomeNoop means nothing changed: same-rod drop, off-rod drop, or no disk held.
	OutcomeNoop Outcome = iota
	// OutcomeRejected means the move broke a rule and the disk went back.
	OutcomeRejected
	// OutcomeMoved means a legal cross-rod move was counted.
	OutcomeMoved
	// OutcomeWon means the counted move completed the puzzle.
	OutcomeWon
	// OutcomeOutOfMoves means the counted move exhausted the move budget.
	OutcomeOutOfMoves
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoop:
		return "noop"
	case OutcomeRejected:
		return "rejected"
	case OutcomeMoved:
		return "moved"
	case OutcomeWon:
		return "won"
	case OutcomeOutOfMoves:
		return "out of moves"
	default:
		return "unknown"
	}
}

// Counted reports whether the outcome advanced the move counter.
func (o Outcome) Counted() bool {
	return o == OutcomeMoved || o == OutcomeWon || o == OutcomeOutOfMoves
}

// Option configures a Game at construction.
type Option func(*Game)

// WithMoveLimit toggles the 2^n-1 move budget.
func WithMoveLimit(enabled bool) Option {
	return func(g *Game) { g.limit = enabled }
}

// WithScramble starts from a random legal position derived from seed instead
// of the classic single stack.
func WithScramble(seed int64) Option {
	return func(g *Game) {
		g.scrambled = true
		g.seed = seed
	}
}

// Game holds the three rods and the progress of one puzzle.
//
// A lifted disk stays on its source rod until it is dropped, so the number of
// disks across rods always equals Disks().
type Game struct {
	rods   [RodCount]Rod
	disks  int
	moves  int
	limit  bool
	status Status
	lifted int

	scrambled bool
	seed      int64
	start     []int
}

// New returns a game with n disks stacked on the first rod.
func New(n int, opts ...Option) (*Game, error) {
	if n < MinDisks || n > MaxDisks {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrDiskCount, n, MinDisks, MaxDisks)
	}
	g := &Game{disks: n, limit: true, lifted: NoRod}
	for _, opt := range opts {
		opt(g)
	}
	g.start = g.startLayout()
	g.Reset()
	return g, nil
}

// Resize changes the disk count and resets the board.
func (g *Game) Resize(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrDiskCount, n, MinDisks, MaxDisks)
	}
	g.disks = n
	g.start = g.startLayout()
	g.Reset()
	return nil
}

// Reset restores the starting position for the current disk count.
func (g *Game) Reset() {
	for i := range g.rods {
		g.rods[i].clear()
	}
	for size := g.disks; size >= 1; size-- {
		g.rods[g.start[size-1]].Push(NewDisk(size))
	}
	g.moves = 0
	g.status = StatusPlaying
	g.lifted = NoRod
}

func (g *Game) startLayout() []int {
	layout := make([]int, g.disks)
	if !g.scrambled {
		return layout
	}
	rng := core.NewRNG(g.seed)
	for {
		solved := true
		for i := range layout {
			layout[i] = rng.IntN(RodCount)
			if layout[i] != GoalRod {
				solved = false
			}
		}
		if !solved {
			return layout
		}
	}
}

// Disks returns the number of disks in play.
func (g *Game) Disks() int { return g.disks }

// Moves returns the number of counted moves since the last reset.
func (g *Game) Moves() int { return g.moves }

// MaxMoves returns the move budget, 2^n - 1.
func (g *Game) MaxMoves() int { return 1<<g.disks - 1 }

// MoveLimit reports whether the move budget is enforced.
func (g *Game) MoveLimit() bool { return g.limit }

// SetMoveLimit toggles the move budget. It takes effect on the next move.
func (g *Game) SetMoveLimit(enabled bool) { g.limit = enabled }

// Scrambled reports whether the game starts from a random position.
func (g *Game) Scrambled() bool { return g.scrambled }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Rod returns a copy of rod i ordered bottom to top.
func (g *Game) Rod(i int) []Disk {
	if !validRod(i) {
		return nil
	}
	return g.rods[i].Disks()
}

// Height returns the number of disks on rod i.
func (g *Game) Height(i int) int {
	if !validRod(i) {
		return 0
	}
	return g.rods[i].Len()
}

// Layout returns the rod holding each disk, indexed by Size-1.
func (g *Game) Layout() []int {
	layout := make([]int, g.disks)
	for i := range g.rods {
		for _, d := range g.rods[i].disks {
			layout[d.Size-1] = i
		}
	}
	return layout
}

// CanMove reports whether the top disk of from may be placed on to.
func (g *Game) CanMove(from, to int) bool {
	if !validRod(from) || !validRod(to) || from == to {
		return false
	}
	d, ok := g.rods[from].Top()
	if !ok {
		return false
	}
	return g.rods[to].Accepts(d)
}

// Move relocates the top disk of from onto to.
func (g *Game) Move(from, to int) Outcome {
	if g.status != StatusPlaying || g.lifted != NoRod {
		return OutcomeRejected
	}
	return g.move(from, to)
}

func (g *Game) move(from, to int) Outcome {
	if !validRod(from) || !validRod(to) {
		return OutcomeRejected
	}
	if from == to {
		return OutcomeNoop
	}
	if !g.CanMove(from, to) {
		return OutcomeRejected
	}
	d, _ := g.rods[from].Pop()
	g.rods[to].Push(d)
	g.moves++
	switch {
	case g.Won():
		g.status = StatusWon
		return OutcomeWon
	case g.limit && g.moves > g.MaxMoves():
		g.status = StatusLost
		return OutcomeOutOfMoves
	}
	return OutcomeMoved
}

// Lift picks up the top disk of rod. The disk stays on the rod until Drop or
// Cancel.
func (g *Game) Lift(rod int) error {
	switch {
	case g.status != StatusPlaying:
		return ErrFinished
	case !validRod(rod):
		return fmt.Errorf("%w: %d", ErrRod, rod)
	case g.lifted != NoRod:
		return ErrHolding
	case g.rods[rod].Empty():
		return fmt.Errorf("%w: %d", ErrEmptyRod, rod)
	}
	g.lifted = rod
	return nil
}

// Lifted returns the held disk and the rod it came from.
func (g *Game) Lifted() (Disk, int, bool) {
	if g.lifted == NoRod {
		return Disk{}, NoRod, false
	}
	d, _ := g.rods[g.lifted].Top()
	return d, g.lifted, true
}

// Drop releases the held disk over rod, or NoRod when released elsewhere.
// Illegal and same-rod drops return the disk to where it came from.
func (g *Game) Drop(rod int) Outcome {
	if g.lifted == NoRod {
		return OutcomeNoop
	}
	from := g.lifted
	g.lifted = NoRod
	if rod == NoRod {
		return OutcomeNoop
	}
	return g.move(from, rod)
}

// Cancel returns the held disk to its rod.
func (g *Game) Cancel() { g.lifted = NoRod }

// Won reports whether every disk sits on the goal rod.
func (g *Game) Won() bool { return g.rods[GoalRod].Len() == g.disks }

func validRod(i int) bool { return i >= 0 && i < RodCount }
