package store

import (
	"context"
	"testing"

	"github.com/roach88/pregame/game"
)

func TestWritePosition_Basic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	up := game.Up()
	p := PositionOf(up, "^")
	if err := s.WritePosition(ctx, p); err != nil {
		t.Fatalf("WritePosition() failed: %v", err)
	}

	var notation string
	var numLeft, numRight, birthday int
	err := s.db.QueryRow(`
		SELECT notation, num_left, num_right, birthday
		FROM positions
		WHERE digest = ?
	`, up.Digest().String()).Scan(&notation, &numLeft, &numRight, &birthday)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if notation != "^" {
		t.Errorf("notation = %q, want %q", notation, "^")
	}
	if numLeft != 1 || numRight != 1 {
		t.Errorf("option counts = (%d, %d), want (1, 1)", numLeft, numRight)
	}
	if birthday != 2 {
		t.Errorf("birthday = %d, want 2", birthday)
	}
}

func TestWritePosition_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := PositionOf(game.Star(), "*")
	for i := 0; i < 3; i++ {
		if err := s.WritePosition(ctx, p); err != nil {
			t.Fatalf("WritePosition() iteration %d failed: %v", i, err)
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM positions").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("position count = %d, want 1", count)
	}
}

func TestWriteComparison_CanonicalOrientation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	lo, hi := seedPair(t, s)

	// Write against the grain: x stored must still be the low digest.
	c := Comparison{
		XDigest:  hi,
		YDigest:  lo,
		Ordering: game.OrderLt,
		RunID:    "run-1",
		Seq:      1,
	}
	if err := s.WriteComparison(ctx, c); err != nil {
		t.Fatalf("WriteComparison() failed: %v", err)
	}

	var x, y, ordering string
	err := s.db.QueryRow("SELECT x_digest, y_digest, ordering FROM comparisons").
		Scan(&x, &y, &ordering)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if x != lo || y != hi {
		t.Errorf("stored pair = (%q, %q), want (%q, %q)", x, y, lo, hi)
	}
	if ordering != "gt" {
		t.Errorf("stored ordering = %q, want %q", ordering, "gt")
	}
}

func TestWriteComparison_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	lo, hi := seedPair(t, s)

	first := Comparison{XDigest: lo, YDigest: hi, Ordering: game.OrderFuzzy, RunID: "run-1", Seq: 1}
	if err := s.WriteComparison(ctx, first); err != nil {
		t.Fatalf("WriteComparison() failed: %v", err)
	}

	// The same pair in the other orientation is a duplicate.
	second := Comparison{XDigest: hi, YDigest: lo, Ordering: game.OrderFuzzy, RunID: "run-1", Seq: 2}
	if err := s.WriteComparison(ctx, second); err != nil {
		t.Fatalf("duplicate WriteComparison() failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM comparisons").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("comparison count = %d, want 1", count)
	}

	// First write wins
	var seq int64
	if err := s.db.QueryRow("SELECT seq FROM comparisons").Scan(&seq); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
}

func TestWriteComparison_RequiresPositions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.WriteRun(ctx, Run{ID: "run-1"}); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}

	c := Comparison{
		XDigest:  "0000",
		YDigest:  "ffff",
		Ordering: game.OrderEquiv,
		RunID:    "run-1",
		Seq:      1,
	}
	if err := s.WriteComparison(ctx, c); err == nil {
		t.Error("expected foreign key error for unknown digests, got nil")
	}
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := Run{ID: "run-7", Positions: 4}
	if err := s.WriteRun(ctx, r); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	if err := s.WriteRun(ctx, Run{ID: "run-7", Positions: 99}); err != nil {
		t.Fatalf("duplicate WriteRun() failed: %v", err)
	}

	got, err := s.ReadRun(ctx, "run-7")
	if err != nil {
		t.Fatalf("ReadRun() failed: %v", err)
	}
	if got.Positions != 4 {
		t.Errorf("positions = %d, want 4 (first write wins)", got.Positions)
	}
}

func TestFinishRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.WriteRun(ctx, Run{ID: "run-9"}); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	if err := s.FinishRun(ctx, "run-9", 17, 153); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}

	got, err := s.ReadRun(ctx, "run-9")
	if err != nil {
		t.Fatalf("ReadRun() failed: %v", err)
	}
	if !got.Finished {
		t.Error("run not marked finished")
	}
	if got.Positions != 17 || got.Comparisons != 153 {
		t.Errorf("counters = (%d, %d), want (17, 153)", got.Positions, got.Comparisons)
	}
}
