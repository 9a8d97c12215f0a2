package hanoi

import (
	"errors"
	"slices"
	"testing"
)

func totalDisks(g *Game) int {
	total := 0
	for i := 0; i < RodCount; i++ {
		total += g.Height(i)
	}
	return total
}

func mustNew(t *testing.T, n int, opts ...Option) *Game {
	t.Helper()
	g, err := New(n, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return g
}

func TestNewStacksDisksOnFirstRod(t *testing.T) {
	g := mustNew(t, 4)
	disks := g.Rod(0)
	if len(disks) != 4 {
		t.Fatalf("first rod holds %d disks, want 4", len(disks))
	}
	for i, d := range disks {
		wantSize := 4 - i
		if d.Size != wantSize || d.Width != 50+wantSize*20 || d.Height != DiskHeight {
			t.Fatalf("disk %d = %+v, want size %d", i, d, wantSize)
		}
	}
	if g.Height(1) != 0 || g.Height(2) != 0 {
		t.Fatal("other rods must start empty")
	}
	if g.MaxMoves() != 15 {
		t.Fatalf("MaxMoves = %d, want 15", g.MaxMoves())
	}
	if g.Moves() != 0 || g.Status() != StatusPlaying {
		t.Fatalf("fresh game moves=%d status=%v", g.Moves(), g.Status())
	}
}

func TestNewRejectsDiskCount(t *testing.T) {
	for _, n := range []int{0, -1, MaxDisks + 1} {
		if _, err := New(n); !errors.Is(err, ErrDiskCount) {
			t.Fatalf("New(%d) err = %v, want ErrDiskCount", n, err)
		}
	}
}

func TestMoveOntoSmallerDiskRejected(t *testing.T) {
	g := mustNew(t, 3)
	if got := g.Move(0, 1); got != OutcomeMoved {
		t.Fatalf("first move = %v", got)
	}
	before := g.Layout()
	if got := g.Move(0, 1); got != OutcomeRejected {
		t.Fatalf("placing disk 2 on disk 1 = %v, want rejected", got)
	}
	if g.Moves() != 1 {
		t.Fatalf("rejected move counted: moves = %d", g.Moves())
	}
	if !slices.Equal(before, g.Layout()) {
		t.Fatal("rejected move changed the board")
	}
}

func TestMoveToSameRodIsNoop(t *testing.T) {
	g := mustNew(t, 3)
	if got := g.Move(0, 0); got != OutcomeNoop {
		t.Fatalf("same-rod move = %v, want noop", got)
	}
	if g.Moves() != 0 || g.Height(0) != 3 {
		t.Fatal("same-rod move changed state")
	}
}

func TestMoveCounterOnlyCountsLegalCrossRodMoves(t *testing.T) {
	g := mustNew(t, 3)
	steps := []struct {
		from, to int
		want     Outcome
		moves    int
	}{
		{0, 2, OutcomeMoved, 1},
		{0, 2, OutcomeRejected, 1},
		{1, 2, OutcomeRejected, 1},
		{2, 2, OutcomeNoop, 1},
		{0, 1, OutcomeMoved, 2},
		{5, 1, OutcomeRejected, 2},
		{2, 1, OutcomeMoved, 3},
	}
	for i, s := range steps {
		got := g.Move(s.from, s.to)
		if got != s.want {
			t.Fatalf("step %d: Move(%d,%d) = %v, want %v", i, s.from, s.to, got, s.want)
		}
		if got.Counted() != (s.want == OutcomeMoved) {
			t.Fatalf("step %d: Counted mismatch for %v", i, got)
		}
		if g.Moves() != s.moves {
			t.Fatalf("step %d: moves = %d, want %d", i, g.Moves(), s.moves)
		}
		if totalDisks(g) != 3 {
			t.Fatalf("step %d: disk total = %d", i, totalDisks(g))
		}
	}
}

func TestOptimalSequenceWins(t *testing.T) {
	g := mustNew(t, 3)
	seq := [][2]int{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}
	var last Outcome
	for _, m := range seq {
		last = g.Move(m[0], m[1])
	}
	if last != OutcomeWon || !g.Won() || g.Status() != StatusWon {
		t.Fatalf("last outcome %v, won=%v status=%v", last, g.Won(), g.Status())
	}
	if g.Moves() != g.MaxMoves() {
		t.Fatalf("moves = %d, want %d", g.Moves(), g.MaxMoves())
	}
	for i := 0; i < RodCount; i++ {
		r := g.rods[i]
		if !r.Ordered() {
			t.Fatalf("rod %d out of order", i)
		}
	}
	if got := g.Move(2, 0); got != OutcomeRejected {
		t.Fatalf("move after win = %v, want rejected", got)
	}
}

func TestMoveBudgetExhausted(t *testing.T) {
	g := mustNew(t, 1)
	if got := g.Move(0, 1); got != OutcomeMoved {
		t.Fatalf("first move = %v", got)
	}
	if got := g.Move(1, 0); got != OutcomeOutOfMoves {
		t.Fatalf("second move = %v, want out of moves", got)
	}
	if g.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", g.Status())
	}
	if err := g.Lift(0); !errors.Is(err, ErrFinished) {
		t.Fatalf("Lift after loss err = %v", err)
	}
}

func TestMoveBudgetDisabled(t *testing.T) {
	g := mustNew(t, 1, WithMoveLimit(false))
	for i := 0; i < 4; i++ {
		if got := g.Move(0, 1); got != OutcomeMoved {
			t.Fatalf("move %d = %v", i, got)
		}
		if got := g.Move(1, 0); got != OutcomeMoved {
			t.Fatalf("move back %d = %v", i, got)
		}
	}
	if g.Moves() != 8 || g.Status() != StatusPlaying {
		t.Fatalf("moves=%d status=%v", g.Moves(), g.Status())
	}
}

func TestWinCheckedBeforeBudget(t *testing.T) {
	g := mustNew(t, 1)
	g.Move(0, 1)
	g.SetMoveLimit(true)
	if got := g.Move(1, 2); got != OutcomeWon {
		t.Fatalf("winning move past budget = %v, want won", got)
	}
}

func TestLiftDropKeepsDiskTotal(t *testing.T) {
	g := mustNew(t, 3)
	if err := g.Lift(0); err != nil {
		t.Fatalf("Lift: %v", err)
	}
	d, from, ok := g.Lifted()
	if !ok || from != 0 || d.Size != 1 {
		t.Fatalf("Lifted = %+v, %d, %v", d, from, ok)
	}
	if totalDisks(g) != 3 {
		t.Fatal("lifting must not remove the disk from the board")
	}
	if err := g.Lift(1); !errors.Is(err, ErrHolding) {
		t.Fatalf("second Lift err = %v", err)
	}
	if got := g.Move(0, 1); got != OutcomeRejected {
		t.Fatalf("Move while holding = %v", got)
	}
	if got := g.Drop(2); got != OutcomeMoved {
		t.Fatalf("Drop = %v", got)
	}
	if _, _, ok := g.Lifted(); ok {
		t.Fatal("disk still held after drop")
	}
	if g.Height(2) != 1 || g.Moves() != 1 {
		t.Fatalf("rod 2 height=%d moves=%d", g.Height(2), g.Moves())
	}
}

func TestDropReturnsDisk(t *testing.T) {
	g := mustNew(t, 3)
	g.Move(0, 1)

	cases := []struct {
		name string
		from int
		to   int
		want Outcome
	}{
		{"off rod", 0, NoRod, OutcomeNoop},
		{"same rod", 0, 0, OutcomeNoop},
		{"onto smaller", 0, 1, OutcomeRejected},
		{"out of range", 0, 7, OutcomeRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := g.Layout()
			if err := g.Lift(tc.from); err != nil {
				t.Fatalf("Lift: %v", err)
			}
			if got := g.Drop(tc.to); got != tc.want {
				t.Fatalf("Drop(%d) = %v, want %v", tc.to, got, tc.want)
			}
			if !slices.Equal(before, g.Layout()) || g.Moves() != 1 {
				t.Fatal("returned disk changed the board")
			}
		})
	}
	if got := g.Drop(1); got != OutcomeNoop {
		t.Fatalf("Drop with nothing held = %v", got)
	}
}

func TestLiftErrors(t *testing.T) {
	g := mustNew(t, 2)
	if err := g.Lift(1); !errors.Is(err, ErrEmptyRod) {
		t.Fatalf("Lift empty err = %v", err)
	}
	if err := g.Lift(3); !errors.Is(err, ErrRod) {
		t.Fatalf("Lift out of range err = %v", err)
	}
	if err := g.Lift(0); err != nil {
		t.Fatalf("Lift: %v", err)
	}
	g.Cancel()
	if _, _, ok := g.Lifted(); ok {
		t.Fatal("Cancel left a disk held")
	}
}

func TestResetRestoresInitialConfiguration(t *testing.T) {
	g := mustNew(t, 5)
	initial := g.Layout()
	g.Move(0, 2)
	g.Move(0, 1)
	_ = g.Lift(2)
	g.Reset()

	if !slices.Equal(initial, g.Layout()) {
		t.Fatalf("layout after reset = %v, want %v", g.Layout(), initial)
	}
	if g.Moves() != 0 || g.Status() != StatusPlaying {
		t.Fatalf("moves=%d status=%v after reset", g.Moves(), g.Status())
	}
	if _, _, ok := g.Lifted(); ok {
		t.Fatal("reset must drop any held disk")
	}
}

func TestResizeResets(t *testing.T) {
	g := mustNew(t, 3)
	g.Move(0, 2)
	if err := g.Resize(6); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if g.Disks() != 6 || g.Height(0) != 6 || g.Moves() != 0 || g.MaxMoves() != 63 {
		t.Fatalf("after resize disks=%d h0=%d moves=%d max=%d", g.Disks(), g.Height(0), g.Moves(), g.MaxMoves())
	}
	if err := g.Resize(0); !errors.Is(err, ErrDiskCount) {
		t.Fatalf("Resize(0) err = %v", err)
	}
	if g.Disks() != 6 {
		t.Fatal("failed resize changed the disk count")
	}
}

func TestScrambleIsLegalDeterministicAndUnsolved(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := mustNew(t, 4, WithScramble(seed))
		if !g.Scrambled() {
			t.Fatal("Scrambled() = false")
		}
		if g.Won() {
			t.Fatalf("seed %d produced a solved start", seed)
		}
		if totalDisks(g) != 4 {
			t.Fatalf("seed %d disk total = %d", seed, totalDisks(g))
		}
		for i := 0; i < RodCount; i++ {
			if !g.rods[i].Ordered() {
				t.Fatalf("seed %d rod %d out of order", seed, i)
			}
		}
		again := mustNew(t, 4, WithScramble(seed))
		if !slices.Equal(g.Layout(), again.Layout()) {
			t.Fatalf("seed %d not deterministic", seed)
		}

		start := g.Layout()
		for from := 0; from < RodCount; from++ {
			for to := 0; to < RodCount; to++ {
				if g.CanMove(from, to) {
					g.Move(from, to)
				}
			}
		}
		g.Reset()
		if !slices.Equal(start, g.Layout()) {
			t.Fatalf("seed %d reset did not restore scrambled start", seed)
		}
	}
}

func TestRodAccepts(t *testing.T) {
	var r Rod
	if !r.Accepts(NewDisk(3)) {
		t.Fatal("empty rod must accept any disk")
	}
	r.Push(NewDisk(3))
	if !r.Accepts(NewDisk(2)) {
		t.Fatal("rod must accept a narrower disk")
	}
	if r.Accepts(NewDisk(3)) || r.Accepts(NewDisk(4)) {
		t.Fatal("rod must refuse an equal or wider disk")
	}
	if d, ok := r.Pop(); !ok || d.Size != 3 {
		t.Fatalf("Pop = %+v, %v", d, ok)
	}
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop on empty rod should fail")
	}
}

func TestStatusAndOutcomeStrings(t *testing.T) {
	if StatusWon.String() != "won" || Status(9).String() != "unknown" {
		t.Fatal("unexpected status strings")
	}
	if OutcomeOutOfMoves.String() != "out of moves" || Outcome(9).String() != "unknown" {
		t.Fatal("unexpected outcome strings")
	}
}
