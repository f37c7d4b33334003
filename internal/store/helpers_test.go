package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/pregame/game"
)

// newTestStore opens a store in a per-test temporary directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedPair writes two positions and a run so that comparison rows can
// satisfy their foreign keys. Returns the two digests in byte order.
func seedPair(t *testing.T, s *Store) (lo, hi string) {
	t.Helper()

	ctx := context.Background()
	zero := PositionOf(game.Zero(), "0")
	star := PositionOf(game.Star(), "*")
	if err := s.WritePosition(ctx, zero); err != nil {
		t.Fatalf("WritePosition() failed: %v", err)
	}
	if err := s.WritePosition(ctx, star); err != nil {
		t.Fatalf("WritePosition() failed: %v", err)
	}
	if err := s.WriteRun(ctx, Run{ID: "run-1"}); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}

	lo, hi = zero.Digest, star.Digest
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
