package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/pregame/game"
)

// ReadPosition retrieves a single position by hex digest.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadPosition(ctx context.Context, digest string) (Position, error) {
	var p Position
	err := s.db.QueryRowContext(ctx, `
		SELECT digest, notation, num_left, num_right, birthday
		FROM positions
		WHERE digest = ?
	`, digest).Scan(&p.Digest, &p.Notation, &p.NumLeft, &p.NumRight, &p.Birthday)
	if err != nil {
		return Position{}, err
	}
	return p, nil
}

// ReadAllPositions returns all positions with deterministic ordering.
// Results ordered by digest ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) ReadAllPositions(ctx context.Context) ([]Position, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT digest, notation, num_left, num_right, birthday
		FROM positions
		ORDER BY digest COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.Digest, &p.Notation, &p.NumLeft, &p.NumRight, &p.Birthday); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate positions: %w", err)
	}

	if positions == nil {
		positions = []Position{}
	}

	return positions, nil
}

// ReadComparison looks up the recorded ordering between two digests.
// The pair may be queried in either direction; a reversed query gets
// the swapped ordering. Returns ok=false when no row exists.
func (s *Store) ReadComparison(ctx context.Context, xDigest, yDigest string) (game.Ordering, bool, error) {
	a, b := xDigest, yDigest
	swapped := false
	if a > b {
		a, b = b, a
		swapped = true
	}

	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT ordering FROM comparisons
		WHERE x_digest = ? AND y_digest = ?
	`, a, b).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read comparison: %w", err)
	}

	o, err := game.ParseOrdering(name)
	if err != nil {
		return 0, false, fmt.Errorf("read comparison: %w", err)
	}
	if swapped {
		o = o.Swap()
	}
	return o, true, nil
}

// ReadRunComparisons returns all comparisons recorded by a run with
// deterministic ordering: ORDER BY seq ASC, x_digest ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if the run recorded nothing.
func (s *Store) ReadRunComparisons(ctx context.Context, runID string) ([]Comparison, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT x_digest, y_digest, ordering, run_id, seq
		FROM comparisons
		WHERE run_id = ?
		ORDER BY seq ASC, x_digest COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run comparisons: %w", err)
	}
	defer rows.Close()

	return scanComparisons(rows)
}

// ReadAllComparisons returns all comparisons with deterministic
// ordering: ORDER BY seq ASC, x_digest ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) ReadAllComparisons(ctx context.Context) ([]Comparison, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT x_digest, y_digest, ordering, run_id, seq
		FROM comparisons
		ORDER BY seq ASC, x_digest COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query all comparisons: %w", err)
	}
	defer rows.Close()

	return scanComparisons(rows)
}

// scanComparisons drains a comparison result set.
func scanComparisons(rows *sql.Rows) ([]Comparison, error) {
	var comparisons []Comparison
	for rows.Next() {
		var c Comparison
		var name string
		if err := rows.Scan(&c.XDigest, &c.YDigest, &name, &c.RunID, &c.Seq); err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		o, err := game.ParseOrdering(name)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		c.Ordering = o
		comparisons = append(comparisons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}

	if comparisons == nil {
		comparisons = []Comparison{}
	}

	return comparisons, nil
}

// ReadRun retrieves a single run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var r Run
	var finished int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, positions, comparisons, finished
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Positions, &r.Comparisons, &finished)
	if err != nil {
		return Run{}, err
	}
	r.Finished = finished != 0
	return r, nil
}

// ReadAllRuns returns all runs ordered by ID. Run IDs are UUIDv7
// tokens, so the order follows token creation.
//
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) ReadAllRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, positions, comparisons, finished
		FROM runs
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished int
		if err := rows.Scan(&r.ID, &r.Positions, &r.Comparisons, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Finished = finished != 0
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	if runs == nil {
		runs = []Run{}
	}

	return runs, nil
}
