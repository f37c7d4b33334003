package game

// Fold computes a value bottom-up over the tree: combine receives each
// node together with the folded results of its Left and Right options,
// leaves first. It is the recursion principle the rest of this package
// follows implicitly, and it terminates because every option chain is
// finite.
func Fold[T any](g *Game, combine func(g *Game, left, right []T) T) T {
	ls := make([]T, len(g.left))
	for i, o := range g.left {
		ls[i] = Fold(o, combine)
	}
	rs := make([]T, len(g.right))
	for i, o := range g.right {
		rs[i] = Fold(o, combine)
	}
	return combine(g, ls, rs)
}

// Birthday returns the height of the tree: Zero is born on day 0, and any
// other game one day after its latest-born option. Birthdays add under
// Add.
func Birthday(g *Game) int {
	return Fold(g, func(_ *Game, left, right []int) int {
		day := -1
		for _, d := range left {
			if d > day {
				day = d
			}
		}
		for _, d := range right {
			if d > day {
				day = d
			}
		}
		return day + 1
	})
}

// Size returns the total number of nodes in the tree, counting repeats.
func Size(g *Game) int {
	return Fold(g, func(_ *Game, left, right []int) int {
		n := 1
		for _, s := range left {
			n += s
		}
		for _, s := range right {
			n += s
		}
		return n
	})
}
