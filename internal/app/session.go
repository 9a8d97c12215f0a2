package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hanoi/internal/hanoi"
	"hanoi/internal/store"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the game window requires building with -tags ebiten")

// History persists finished games.
type History interface {
	Save(ctx context.Context, rec store.Record) error
	Best(ctx context.Context, disks int) (store.Record, bool, error)
}

// session tracks one attempt from reset to its end.
type session struct {
	id      string
	started time.Time
	done    bool
}

func newSession(now time.Time) session {
	return session{id: uuid.NewString(), started: now}
}

// record builds the history entry for g ending with result at now.
func (s session) record(g *hanoi.Game, result store.Result, now time.Time) store.Record {
	return store.Record{
		ID:        s.id,
		Disks:     g.Disks(),
		Moves:     g.Moves(),
		MaxMoves:  g.MaxMoves(),
		Result:    result,
		Scrambled: g.Scrambled(),
		StartedAt: s.started,
		Duration:  now.Sub(s.started),
	}
}
