// Package testutil provides deterministic game generators shared by tests
// across the module.
package testutil

import (
	"math/rand"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/roach88/pregame/game"
)

// RandomGame builds a pseudo-random game from rng, at most maxDepth levels
// deep and at most maxWidth options per side at every node. The same seed
// always yields the same tree.
func RandomGame(rng *rand.Rand, maxDepth, maxWidth int) *game.Game {
	if maxDepth <= 0 {
		return game.Zero()
	}
	left := make([]*game.Game, rng.Intn(maxWidth+1))
	for i := range left {
		left[i] = RandomGame(rng, maxDepth-1, maxWidth)
	}
	right := make([]*game.Game, rng.Intn(maxWidth+1))
	for i := range right {
		right[i] = RandomGame(rng, maxDepth-1, maxWidth)
	}
	return game.New(left, right)
}

// Permuted rebuilds g with the options of every node shuffled: a
// relabelling of g, so the result keeps g's digest.
func Permuted(rng *rand.Rand, g *game.Game) *game.Game {
	left := make([]*game.Game, g.NumLeft())
	for i := range left {
		left[i] = Permuted(rng, g.MoveLeft(i))
	}
	right := make([]*game.Game, g.NumRight())
	for i := range right {
		right[i] = Permuted(rng, g.MoveRight(i))
	}
	rng.Shuffle(len(left), func(i, j int) { left[i], left[j] = left[j], left[i] })
	rng.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })
	return game.New(left, right)
}

// GameGen returns a gopter generator of games bounded by maxDepth and
// maxWidth. There is no shrinker; the bounds keep counterexamples small
// instead.
func GameGen(maxDepth, maxWidth int) gopter.Gen {
	return gen.Int64().Map(func(seed int64) *game.Game {
		rng := rand.New(rand.NewSource(seed))
		return RandomGame(rng, maxDepth, maxWidth)
	})
}
