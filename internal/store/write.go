package store

import (
	"context"
	"fmt"
)

// WritePosition inserts a position record into the store.
// Uses ON CONFLICT(digest) DO NOTHING for idempotency - a digest
// already present is silently ignored, which is sound because the
// digest determines every other column.
func (s *Store) WritePosition(ctx context.Context, p Position) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO positions
		(digest, notation, num_left, num_right, birthday)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(digest) DO NOTHING
	`,
		p.Digest,
		p.Notation,
		p.NumLeft,
		p.NumRight,
		p.Birthday,
	)
	if err != nil {
		return fmt.Errorf("write position: %w", err)
	}

	return nil
}

// WriteComparison inserts a comparison record into the store.
// The record is stored in canonical orientation (x_digest <= y_digest)
// with the ordering swapped to match, so each unordered pair occupies
// exactly one row regardless of query direction.
//
// Uses ON CONFLICT DO NOTHING for idempotency - re-recording a pair is
// silently ignored.
//
// Note: Both digests and the run referenced by RunID must exist
// (foreign key constraints).
func (s *Store) WriteComparison(ctx context.Context, c Comparison) error {
	c = c.canonical()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comparisons
		(x_digest, y_digest, ordering, run_id, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(x_digest, y_digest) DO NOTHING
	`,
		c.XDigest,
		c.YDigest,
		c.Ordering.String(),
		c.RunID,
		c.Seq,
	)
	if err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}

	return nil
}

// WriteRun inserts a run record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency.
func (s *Store) WriteRun(ctx context.Context, r Run) error {
	finished := 0
	if r.Finished {
		finished = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, positions, comparisons, finished)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.Positions,
		r.Comparisons,
		finished,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// FinishRun records the final counters of a run and marks it finished.
func (s *Store) FinishRun(ctx context.Context, id string, positions, comparisons int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET positions = ?, comparisons = ?, finished = 1
		WHERE id = ?
	`,
		positions,
		comparisons,
		id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	return nil
}
