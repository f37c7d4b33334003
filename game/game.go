package game

// Game is a finite combinatorial game tree. A node holds the positions
// Left may move to and the positions Right may move to; a position with
// no moves for either player is the zero game. Values are immutable once
// constructed and safe to share between goroutines.
//
// Identity is structural. Every node carries a content-addressed digest
// computed at construction, which treats the two option families as
// multisets: reordering options never changes the digest. See Digest.
type Game struct {
	left   []*Game
	right  []*Game
	digest Digest
}

// New returns the game whose Left options are left and whose Right options
// are right. Both slices are copied, so the caller may reuse them. Options
// must be non-nil; New panics otherwise, since a nil option has no tree to
// recurse into.
func New(left, right []*Game) *Game {
	for _, o := range left {
		if o == nil {
			panic("game: nil Left option")
		}
	}
	for _, o := range right {
		if o == nil {
			panic("game: nil Right option")
		}
	}
	l := make([]*Game, len(left))
	copy(l, left)
	r := make([]*Game, len(right))
	copy(r, right)
	return newGame(l, r)
}

// newGame constructs a node taking ownership of the option slices.
// Internal callers build fresh slices and skip the defensive copy in New.
func newGame(left, right []*Game) *Game {
	return &Game{
		left:   left,
		right:  right,
		digest: computeDigest(left, right),
	}
}

var (
	zeroGame = newGame(nil, nil)
	oneGame  = newGame([]*Game{zeroGame}, nil)
	starGame = newGame([]*Game{zeroGame}, []*Game{zeroGame})
	upGame   = newGame([]*Game{zeroGame}, []*Game{starGame})
	downGame = newGame([]*Game{starGame}, []*Game{zeroGame})
	halfGame = newGame([]*Game{zeroGame}, []*Game{oneGame})
)

// Zero returns the empty game {|}: neither player can move, so whoever is
// to move loses.
func Zero() *Game { return zeroGame }

// One returns {0|}: a single free move for Left.
func One() *Game { return oneGame }

// Star returns {0|0}: either player may move to zero, so the first player
// to move wins.
func Star() *Game { return starGame }

// Up returns {0|*}, a positive infinitesimal.
func Up() *Game { return upGame }

// Down returns {*|0}, the negation of Up.
func Down() *Game { return downGame }

// Half returns {0|1}, the dyadic rational 1/2.
func Half() *Game { return halfGame }

// Int returns the integer game for n: n free moves for Left when n is
// positive, for Right when negative, and Zero when n is 0.
func Int(n int64) *Game {
	switch {
	case n == 0:
		return zeroGame
	case n > 0:
		return newGame([]*Game{Int(n - 1)}, nil)
	default:
		return Neg(Int(-n))
	}
}

// Nim returns the nimber *n: either player may move to any smaller nimber.
// Nim(0) is Zero and Nim(1) is Star. Tree size grows exponentially in n,
// so this is intended for small indices.
func Nim(n uint) *Game {
	switch n {
	case 0:
		return zeroGame
	case 1:
		return starGame
	}
	opts := make([]*Game, n)
	for i := range opts {
		opts[i] = Nim(uint(i))
	}
	return New(opts, opts)
}

// Dyadic returns the game for the dyadic rational num/2^exp in canonical
// form: integers count free moves, and a non-integer p/2^k is
// {(p-1)/2^k | (p+1)/2^k} after reducing the fraction to lowest terms.
func Dyadic(num int64, exp uint) *Game {
	for num != 0 && num%2 == 0 && exp > 0 {
		num /= 2
		exp--
	}
	if exp == 0 || num == 0 {
		return Int(num)
	}
	left := Dyadic((num-1)/2, exp-1)
	right := Dyadic((num+1)/2, exp-1)
	return newGame([]*Game{left}, []*Game{right})
}

// NumLeft returns the number of Left options.
func (g *Game) NumLeft() int { return len(g.left) }

// NumRight returns the number of Right options.
func (g *Game) NumRight() int { return len(g.right) }

// MoveLeft returns the i-th Left option. It panics if i is out of range,
// matching slice indexing.
func (g *Game) MoveLeft(i int) *Game { return g.left[i] }

// MoveRight returns the i-th Right option.
func (g *Game) MoveRight(i int) *Game { return g.right[i] }

// Equal reports whether x and y are the same tree: equally many options on
// each side, pairwise Equal in the same order. It is finer than Detect,
// which additionally admits reordering, and much finer than Equiv, which
// only compares game value.
func Equal(x, y *Game) bool {
	if x == y {
		return true
	}
	if x.digest != y.digest {
		return false
	}
	if len(x.left) != len(y.left) || len(x.right) != len(y.right) {
		return false
	}
	for i := range x.left {
		if !Equal(x.left[i], y.left[i]) {
			return false
		}
	}
	for i := range x.right {
		if !Equal(x.right[i], y.right[i]) {
			return false
		}
	}
	return true
}

// IsOption reports whether x is a direct Left or Right option of y.
func IsOption(x, y *Game) bool {
	for _, o := range y.left {
		if Equal(x, o) {
			return true
		}
	}
	for _, o := range y.right {
		if Equal(x, o) {
			return true
		}
	}
	return false
}

// IsSubsequent reports whether x appears strictly below y in the tree: it
// is an option of y, or an option of an option, and so on. This is the
// well-founded relation every recursion in this package descends along.
func IsSubsequent(x, y *Game) bool {
	for _, o := range y.left {
		if Equal(x, o) || IsSubsequent(x, o) {
			return true
		}
	}
	for _, o := range y.right {
		if Equal(x, o) || IsSubsequent(x, o) {
			return true
		}
	}
	return false
}
