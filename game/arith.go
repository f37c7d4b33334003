package game

// Neg returns -g: the game with Left and Right exchanged at every level.
// Applying it twice rebuilds a tree Equal to the original.
func Neg(g *Game) *Game {
	left := make([]*Game, len(g.right))
	for i, r := range g.right {
		left[i] = Neg(r)
	}
	right := make([]*Game, len(g.left))
	for i, l := range g.left {
		right[i] = Neg(l)
	}
	return newGame(left, right)
}

// Add returns x+y, the game played on both components at once: a move is a
// move in exactly one of them, the other carried along unchanged. Left
// options are x's Left moves played inside the sum followed by y's; Right
// options likewise. The block order is a construction detail the digest
// ignores.
func Add(x, y *Game) *Game {
	left := make([]*Game, 0, len(x.left)+len(y.left))
	for _, xl := range x.left {
		left = append(left, Add(xl, y))
	}
	for _, yl := range y.left {
		left = append(left, Add(x, yl))
	}
	right := make([]*Game, 0, len(x.right)+len(y.right))
	for _, xr := range x.right {
		right = append(right, Add(xr, y))
	}
	for _, yr := range y.right {
		right = append(right, Add(x, yr))
	}
	return newGame(left, right)
}

// Sub returns x-y, defined as x + (-y). Sub(x, x) is equivalent to Zero
// for every x, though rarely Equal to it.
func Sub(x, y *Game) *Game {
	return Add(x, Neg(y))
}
