package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, res := range []Result{ResultWon, ResultLost, ResultAbandoned} {
		require.NoError(t, s.Save(ctx, Record{
			ID:        string(rune('a' + i)),
			Disks:     3,
			Moves:     7 + i,
			MaxMoves:  7,
			Result:    res,
			Scrambled: i == 2,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Duration:  time.Duration(i+1) * time.Second,
		}))
	}

	recs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "c", recs[0].ID)
	assert.Equal(t, ResultAbandoned, recs[0].Result)
	assert.True(t, recs[0].Scrambled)
	assert.Equal(t, 3*time.Second, recs[0].Duration)
	assert.True(t, recs[0].StartedAt.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, "b", recs[1].ID)
}

func TestSaveRequiresID(t *testing.T) {
	s := openTemp(t)
	assert.Error(t, s.Save(context.Background(), Record{Disks: 3}))
}

func TestSaveRejectsDuplicateID(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	rec := Record{ID: "dup", Disks: 3, Result: ResultWon, StartedAt: time.Now()}
	require.NoError(t, s.Save(ctx, rec))
	assert.Error(t, s.Save(ctx, rec))
}

func TestBest(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, ok, err := s.Best(ctx, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Now()
	recs := []Record{
		{ID: "slow", Disks: 4, Moves: 15, Result: ResultWon, StartedAt: now, Duration: 40 * time.Second},
		{ID: "fast", Disks: 4, Moves: 15, Result: ResultWon, StartedAt: now, Duration: 20 * time.Second},
		{ID: "long", Disks: 4, Moves: 19, Result: ResultWon, StartedAt: now, Duration: time.Second},
		{ID: "lost", Disks: 4, Moves: 3, Result: ResultLost, StartedAt: now},
		{ID: "other", Disks: 5, Moves: 1, Result: ResultWon, StartedAt: now},
	}
	for _, r := range recs {
		require.NoError(t, s.Save(ctx, r))
	}

	best, ok, err := s.Best(ctx, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fast", best.ID)
	assert.Equal(t, 15, best.Moves)
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), Record{ID: "x", Disks: 3, Result: ResultWon, StartedAt: time.Now()}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	recs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "x", recs[0].ID)
}
