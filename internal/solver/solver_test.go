package solver

import (
	"testing"

	"hanoi/internal/hanoi"
)

func TestPlanSolvesFromStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		g, err := hanoi.New(n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		plan := Plan(n, 0, hanoi.GoalRod)
		if len(plan) != g.MaxMoves() {
			t.Fatalf("n=%d plan length %d, want %d", n, len(plan), g.MaxMoves())
		}
		var last hanoi.Outcome
		for i, m := range plan {
			last = g.Move(m.From, m.To)
			if !last.Counted() {
				t.Fatalf("n=%d move %d (%v) = %v", n, i, m, last)
			}
		}
		if last != hanoi.OutcomeWon {
			t.Fatalf("n=%d final outcome %v", n, last)
		}
	}
}

func TestPlanRejectsDegenerateInput(t *testing.T) {
	cases := []struct{ n, from, to int }{
		{0, 0, 2},
		{3, 1, 1},
		{3, -1, 2},
		{3, 0, 3},
	}
	for _, c := range cases {
		if got := Plan(c.n, c.from, c.to); got != nil {
			t.Fatalf("Plan(%d,%d,%d) = %v, want nil", c.n, c.from, c.to, got)
		}
	}
}

func TestNextMatchesPlanFromStart(t *testing.T) {
	g, _ := hanoi.New(4)
	plan := Plan(4, 0, hanoi.GoalRod)
	for i, want := range plan {
		got, ok := Next(g)
		if !ok || got != want {
			t.Fatalf("step %d: Next = %v, %v; want %v", i, got, ok, want)
		}
		if rem := Remaining(g); rem != len(plan)-i {
			t.Fatalf("step %d: Remaining = %d, want %d", i, rem, len(plan)-i)
		}
		g.Move(got.From, got.To)
	}
	if _, ok := Next(g); ok {
		t.Fatal("Next on a solved game should report false")
	}
	if Remaining(g) != 0 {
		t.Fatal("Remaining on a solved game should be zero")
	}
}

func TestNextSolvesScrambledPositions(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := hanoi.New(5, hanoi.WithScramble(seed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		want := Remaining(g)
		if want > g.MaxMoves() {
			t.Fatalf("seed %d: remaining %d exceeds budget %d", seed, want, g.MaxMoves())
		}
		steps := 0
		for !g.Won() {
			m, ok := Next(g)
			if !ok {
				t.Fatalf("seed %d: Next gave up on an unsolved game", seed)
			}
			if out := g.Move(m.From, m.To); !out.Counted() {
				t.Fatalf("seed %d: hint %v was %v", seed, m, out)
			}
			steps++
		}
		if steps != want {
			t.Fatalf("seed %d: solved in %d moves, Remaining said %d", seed, steps, want)
		}
	}
}

func TestMoveString(t *testing.T) {
	if got := (Move{From: 0, To: 2}).String(); got != "rod 1 -> rod 3" {
		t.Fatalf("String = %q", got)
	}
}
