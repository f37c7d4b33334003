package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/pregame/game"
	"github.com/roach88/pregame/internal/book"
	"github.com/roach88/pregame/internal/store"
	"github.com/roach88/pregame/notation"
)

// PairResult is one classified pair of a run.
type PairResult struct {
	XName    string
	YName    string
	Ordering game.Ordering
	Seq      int64
}

// Result is the outcome of an analysis run.
type Result struct {
	RunID     string
	Positions int
	Pairs     []PairResult
}

// Runner performs all-pairs analysis over books of positions.
//
// Comparisons go through a memoizing comparator, so shared subgames
// across a book are classified once. With a store attached, every
// position, comparison, and the run itself are recorded durably;
// without one the runner is purely in-memory.
type Runner struct {
	cache  *game.Cache
	store  *store.Store
	tokens TokenGenerator
	clock  *Clock
}

// Option allows configuration of runner parameters.
type Option func(*Runner)

// WithStore attaches a store; the runner records runs durably in it.
func WithStore(s *store.Store) Option {
	return func(r *Runner) {
		r.store = s
	}
}

// WithCache replaces the runner's comparator cache. Sharing one cache
// across runners avoids re-deriving orderings for overlapping books.
func WithCache(c *game.Cache) Option {
	return func(r *Runner) {
		r.cache = c
	}
}

// New creates a Runner with the given token generator.
func New(tokens TokenGenerator, opts ...Option) *Runner {
	r := &Runner{
		cache:  game.NewCache(),
		tokens: tokens,
		clock:  NewClock(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// AnalyzeBook classifies every unordered pair of the book, self-pairs
// included. Pairs are visited in lexicographic (name, name) order, so
// the seq assignment is deterministic for a given book.
func (r *Runner) AnalyzeBook(ctx context.Context, b *book.Book) (*Result, error) {
	runID := r.tokens.Generate()
	slog.Debug("analysis run starting",
		"run", runID,
		"positions", b.Len(),
	)

	if r.store != nil {
		if err := r.store.WriteRun(ctx, store.Run{ID: runID}); err != nil {
			return nil, fmt.Errorf("analyze: start run %s: %w", runID, err)
		}
	}

	positions := b.Positions
	if err := r.recordPositions(ctx, positions); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     runID,
		Positions: len(positions),
	}
	for i := range positions {
		for j := i; j < len(positions); j++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("analyze: run %s: %w", runID, err)
			}
			pair, err := r.classify(ctx, runID, &positions[i], &positions[j])
			if err != nil {
				return nil, err
			}
			result.Pairs = append(result.Pairs, pair)
		}
	}

	if r.store != nil {
		if err := r.store.FinishRun(ctx, runID, result.Positions, len(result.Pairs)); err != nil {
			return nil, fmt.Errorf("analyze: finish run %s: %w", runID, err)
		}
	}

	slog.Debug("analysis run finished",
		"run", runID,
		"comparisons", len(result.Pairs),
	)
	return result, nil
}

// AnalyzePair classifies a single named pair, recording it the same
// way AnalyzeBook records a full book.
func (r *Runner) AnalyzePair(ctx context.Context, x, y book.Position) (*Result, error) {
	runID := r.tokens.Generate()
	if r.store != nil {
		if err := r.store.WriteRun(ctx, store.Run{ID: runID}); err != nil {
			return nil, fmt.Errorf("analyze: start run %s: %w", runID, err)
		}
	}
	if err := r.recordPositions(ctx, []book.Position{x, y}); err != nil {
		return nil, err
	}

	pair, err := r.classify(ctx, runID, &x, &y)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     runID,
		Positions: 2,
		Pairs:     []PairResult{pair},
	}
	if r.store != nil {
		if err := r.store.FinishRun(ctx, runID, result.Positions, 1); err != nil {
			return nil, fmt.Errorf("analyze: finish run %s: %w", runID, err)
		}
	}
	return result, nil
}

// recordPositions writes the position rows backing a run's comparisons.
func (r *Runner) recordPositions(ctx context.Context, positions []book.Position) error {
	if r.store == nil {
		return nil
	}
	for i := range positions {
		p := &positions[i]
		row := store.PositionOf(p.Game, notation.Canonical(p.Game))
		if err := r.store.WritePosition(ctx, row); err != nil {
			return fmt.Errorf("analyze: record position %s: %w", p.Name, err)
		}
	}
	return nil
}

// classify compares one pair, stamps it, and records it.
func (r *Runner) classify(ctx context.Context, runID string, x, y *book.Position) (PairResult, error) {
	ordering := r.cache.Compare(x.Game, y.Game)
	seq := r.clock.Next()

	slog.Debug("pair classified",
		"x", x.Name,
		"y", y.Name,
		"ordering", ordering.String(),
		"seq", seq,
	)

	if r.store != nil {
		c := store.Comparison{
			XDigest:  x.Game.Digest().String(),
			YDigest:  y.Game.Digest().String(),
			Ordering: ordering,
			RunID:    runID,
			Seq:      seq,
		}
		if err := r.store.WriteComparison(ctx, c); err != nil {
			return PairResult{}, fmt.Errorf("analyze: record %s vs %s: %w", x.Name, y.Name, err)
		}
	}

	return PairResult{
		XName:    x.Name,
		YName:    y.Name,
		Ordering: ordering,
		Seq:      seq,
	}, nil
}
