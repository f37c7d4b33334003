package game

// Le reports whether x <= y: Left, moving second, does at least as well in
// y as in x. By Conway's definition this holds exactly when no Left option
// of x is >= y and no Right option of y is <= x; each test is itself an
// order query one level down, so the recursion bottoms out at games with
// no options.
func Le(x, y *Game) bool {
	for _, xl := range x.left {
		if Le(y, xl) {
			return false
		}
	}
	for _, yr := range y.right {
		if Le(yr, x) {
			return false
		}
	}
	return true
}

// Lf reports whether x is less than or fuzzy against y, written x <| y:
// Left to move does strictly better in y than Right allows in x. It is the
// negation dual of Le: x <| y holds exactly when y <= x fails, which
// unfolds to "some Left option of y is >= x, or some Right option of x is
// <= y".
func Lf(x, y *Game) bool { return !Le(y, x) }

// Lt reports strict order: x <= y without y <= x.
func Lt(x, y *Game) bool { return Le(x, y) && !Le(y, x) }

// Gt reports strict order the other way: y < x.
func Gt(x, y *Game) bool { return Lt(y, x) }

// Equiv reports whether x and y have the same value: x <= y and y <= x.
// Equivalent games are interchangeable inside any sum or comparison, even
// when their trees differ (Zero and {-1|1} are Equiv but far from Equal).
func Equiv(x, y *Game) bool { return Le(x, y) && Le(y, x) }

// Fuzzy reports whether x and y are incomparable, written x || y: neither
// x <= y nor y <= x. Against Zero this means the first player to move
// wins.
func Fuzzy(x, y *Game) bool { return !Le(x, y) && !Le(y, x) }
