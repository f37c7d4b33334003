package store

import "github.com/roach88/pregame/game"

// Position is one recorded game tree, keyed by its hex digest.
type Position struct {
	Digest   string
	Notation string
	NumLeft  int
	NumRight int
	Birthday int
}

// PositionOf builds the row for a game tree from its canonical notation.
func PositionOf(g *game.Game, notation string) Position {
	return Position{
		Digest:   g.Digest().String(),
		Notation: notation,
		NumLeft:  g.NumLeft(),
		NumRight: g.NumRight(),
		Birthday: game.Birthday(g),
	}
}

// Comparison is one recorded ordering between two positions.
type Comparison struct {
	XDigest  string
	YDigest  string
	Ordering game.Ordering
	RunID    string
	Seq      int64
}

// canonical returns the comparison in storage orientation, the one
// with XDigest <= YDigest under byte order.
func (c Comparison) canonical() Comparison {
	if c.XDigest <= c.YDigest {
		return c
	}
	c.XDigest, c.YDigest = c.YDigest, c.XDigest
	c.Ordering = c.Ordering.Swap()
	return c
}

// Run is one analysis run.
type Run struct {
	ID          string
	Positions   int
	Comparisons int
	Finished    bool
}
