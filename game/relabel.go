package game

import "fmt"

// Relabelling is a witness that two games are the same tree up to
// reordering of options: a bijection between Left families, a bijection
// between Right families, and recursively a witness between each option
// and its image. Holding a *Relabelling is holding a checkable proof,
// stronger than Equiv (which Star and {1|-1}+Star satisfy without any
// shared structure) and weaker than Equal (which fixes the order).
//
// Witnesses are built by Refl, Detect, the congruence constructors, or a
// validated NewRelabelling, and are immutable afterwards.
type Relabelling struct {
	x, y      *Game
	leftPerm  []int // leftPerm[i] is the index in y's Left family matched to x's i-th Left option
	rightPerm []int
	leftSub   []*Relabelling // leftSub[i] relates x.left[i] to y.left[leftPerm[i]]
	rightSub  []*Relabelling
}

// Witness construction error codes.
const (
	ErrCodeCardinality = "CARDINALITY_MISMATCH"
	ErrCodeBijection   = "INVALID_BIJECTION"
	ErrCodeLinkage     = "OPTION_MISMATCH"
	ErrCodeMiddle      = "MIDDLE_MISMATCH"
)

// WitnessError reports an invalid relabelling construction.
type WitnessError struct {
	Code    string
	Message string
}

func (e *WitnessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Games returns the two games the witness relates, in order.
func (r *Relabelling) Games() (x, y *Game) { return r.x, r.y }

// NewRelabelling validates and assembles a witness between x and y from
// explicit permutations and sub-witnesses. leftPerm[i] names the Left
// option of y matched to the i-th Left option of x, and leftSub[i] must
// relate exactly those two subtrees; likewise on the Right. The slices are
// copied. Errors carry ErrCodeCardinality for family size mismatches,
// ErrCodeBijection for malformed permutations and ErrCodeLinkage for
// sub-witnesses that relate the wrong games.
func NewRelabelling(x, y *Game, leftPerm, rightPerm []int, leftSub, rightSub []*Relabelling) (*Relabelling, error) {
	if len(x.left) != len(y.left) {
		return nil, &WitnessError{
			Code:    ErrCodeCardinality,
			Message: fmt.Sprintf("Left families differ in size: %d vs %d", len(x.left), len(y.left)),
		}
	}
	if len(x.right) != len(y.right) {
		return nil, &WitnessError{
			Code:    ErrCodeCardinality,
			Message: fmt.Sprintf("Right families differ in size: %d vs %d", len(x.right), len(y.right)),
		}
	}
	if err := checkFamily("Left", x.left, y.left, leftPerm, leftSub); err != nil {
		return nil, err
	}
	if err := checkFamily("Right", x.right, y.right, rightPerm, rightSub); err != nil {
		return nil, err
	}
	r := &Relabelling{
		x:         x,
		y:         y,
		leftPerm:  make([]int, len(leftPerm)),
		rightPerm: make([]int, len(rightPerm)),
		leftSub:   make([]*Relabelling, len(leftSub)),
		rightSub:  make([]*Relabelling, len(rightSub)),
	}
	copy(r.leftPerm, leftPerm)
	copy(r.rightPerm, rightPerm)
	copy(r.leftSub, leftSub)
	copy(r.rightSub, rightSub)
	return r, nil
}

func checkFamily(side string, xs, ys []*Game, perm []int, subs []*Relabelling) error {
	if len(perm) != len(xs) {
		return &WitnessError{
			Code:    ErrCodeBijection,
			Message: fmt.Sprintf("%s permutation has %d entries for %d options", side, len(perm), len(xs)),
		}
	}
	if !isBijection(perm, len(ys)) {
		return &WitnessError{
			Code:    ErrCodeBijection,
			Message: fmt.Sprintf("%s permutation is not a bijection onto %d options", side, len(ys)),
		}
	}
	if len(subs) != len(xs) {
		return &WitnessError{
			Code:    ErrCodeLinkage,
			Message: fmt.Sprintf("%s has %d sub-witnesses for %d options", side, len(subs), len(xs)),
		}
	}
	for i, sub := range subs {
		if sub == nil {
			return &WitnessError{
				Code:    ErrCodeLinkage,
				Message: fmt.Sprintf("%s sub-witness %d is nil", side, i),
			}
		}
		if !Equal(sub.x, xs[i]) || !Equal(sub.y, ys[perm[i]]) {
			return &WitnessError{
				Code:    ErrCodeLinkage,
				Message: fmt.Sprintf("%s sub-witness %d does not relate option %d to option %d", side, i, i, perm[i]),
			}
		}
	}
	return nil
}

func isBijection(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, j := range perm {
		if j < 0 || j >= n || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}

// Refl returns the identity witness relating x to itself.
func Refl(x *Game) *Relabelling {
	r := &Relabelling{
		x:         x,
		y:         x,
		leftPerm:  identityPerm(len(x.left)),
		rightPerm: identityPerm(len(x.right)),
		leftSub:   make([]*Relabelling, len(x.left)),
		rightSub:  make([]*Relabelling, len(x.right)),
	}
	for i, o := range x.left {
		r.leftSub[i] = Refl(o)
	}
	for i, o := range x.right {
		r.rightSub[i] = Refl(o)
	}
	return r
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Symm returns the inverse witness, relating y back to x through the
// inverted permutations.
func (r *Relabelling) Symm() *Relabelling {
	s := &Relabelling{
		x:         r.y,
		y:         r.x,
		leftPerm:  make([]int, len(r.leftPerm)),
		rightPerm: make([]int, len(r.rightPerm)),
		leftSub:   make([]*Relabelling, len(r.leftSub)),
		rightSub:  make([]*Relabelling, len(r.rightSub)),
	}
	for i, j := range r.leftPerm {
		s.leftPerm[j] = i
		s.leftSub[j] = r.leftSub[i].Symm()
	}
	for i, j := range r.rightPerm {
		s.rightPerm[j] = i
		s.rightSub[j] = r.rightSub[i].Symm()
	}
	return s
}

// Trans composes a witness between x and y with a witness between y and z
// into one between x and z. The middle games must be Equal; otherwise the
// composition is meaningless and Trans returns ErrCodeMiddle.
func Trans(r1, r2 *Relabelling) (*Relabelling, error) {
	if !Equal(r1.y, r2.x) {
		return nil, &WitnessError{
			Code:    ErrCodeMiddle,
			Message: "middle games of the two witnesses differ",
		}
	}
	t := &Relabelling{
		x:         r1.x,
		y:         r2.y,
		leftPerm:  make([]int, len(r1.leftPerm)),
		rightPerm: make([]int, len(r1.rightPerm)),
		leftSub:   make([]*Relabelling, len(r1.leftSub)),
		rightSub:  make([]*Relabelling, len(r1.rightSub)),
	}
	for i, j := range r1.leftPerm {
		t.leftPerm[i] = r2.leftPerm[j]
		sub, err := Trans(r1.leftSub[i], r2.leftSub[j])
		if err != nil {
			return nil, err
		}
		t.leftSub[i] = sub
	}
	for i, j := range r1.rightPerm {
		t.rightPerm[i] = r2.rightPerm[j]
		sub, err := Trans(r1.rightSub[i], r2.rightSub[j])
		if err != nil {
			return nil, err
		}
		t.rightSub[i] = sub
	}
	return t, nil
}

// Detect searches for a relabelling between x and y. It returns the
// witness and true when one exists, and nil and false otherwise. The
// digest collapses exactly the relabelling classes, so a digest mismatch
// settles the negative case immediately; the positive case reconstructs
// the bijections by matching options within equal-digest groups,
// backtracking when a tentative pairing strands a later option.
func Detect(x, y *Game) (*Relabelling, bool) {
	if x.digest != y.digest {
		return nil, false
	}
	if len(x.left) != len(y.left) || len(x.right) != len(y.right) {
		return nil, false
	}
	lp, ls, ok := matchOptions(x.left, y.left)
	if !ok {
		return nil, false
	}
	rp, rs, ok := matchOptions(x.right, y.right)
	if !ok {
		return nil, false
	}
	return &Relabelling{x: x, y: y, leftPerm: lp, rightPerm: rp, leftSub: ls, rightSub: rs}, true
}

func matchOptions(xs, ys []*Game) ([]int, []*Relabelling, bool) {
	perm := make([]int, len(xs))
	subs := make([]*Relabelling, len(xs))
	used := make([]bool, len(ys))
	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(xs) {
			return true
		}
		for j := range ys {
			if used[j] || xs[i].digest != ys[j].digest {
				continue
			}
			sub, ok := Detect(xs[i], ys[j])
			if !ok {
				continue
			}
			perm[i], subs[i], used[j] = j, sub, true
			if assign(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}
	if !assign(0) {
		return nil, nil, false
	}
	return perm, subs, true
}

// Equiv derives the two order facts the witness certifies: Le between the
// related games in both directions. The derivation walks the witness
// rather than running the order engine: a Left option of x can never
// improve on y because the bijection hands Left the matching option of y,
// and symmetrically for Right, so the walk is linear in the witness. Both
// results are false only if the witness structure is internally
// inconsistent, which validated construction rules out.
func (r *Relabelling) Equiv() (leXY, leYX bool) {
	ok := r.derive()
	return ok, ok
}

func (r *Relabelling) derive() bool {
	if len(r.leftSub) != len(r.leftPerm) || len(r.rightSub) != len(r.rightPerm) {
		return false
	}
	if len(r.leftPerm) != len(r.x.left) || len(r.rightPerm) != len(r.x.right) {
		return false
	}
	if !isBijection(r.leftPerm, len(r.y.left)) || !isBijection(r.rightPerm, len(r.y.right)) {
		return false
	}
	for i, sub := range r.leftSub {
		if sub == nil || sub.x.digest != r.x.left[i].digest || sub.y.digest != r.y.left[r.leftPerm[i]].digest {
			return false
		}
		if !sub.derive() {
			return false
		}
	}
	for i, sub := range r.rightSub {
		if sub == nil || sub.x.digest != r.x.right[i].digest || sub.y.digest != r.y.right[r.rightPerm[i]].digest {
			return false
		}
		if !sub.derive() {
			return false
		}
	}
	return true
}

// NegCongr lifts a witness between x and y to one between -x and -y.
// Negation swaps the sides, so the Left data of the lifted witness comes
// from the Right data of r with each sub-witness lifted in turn.
func NegCongr(r *Relabelling) *Relabelling {
	n := &Relabelling{
		x:         Neg(r.x),
		y:         Neg(r.y),
		leftPerm:  make([]int, len(r.rightPerm)),
		rightPerm: make([]int, len(r.leftPerm)),
		leftSub:   make([]*Relabelling, len(r.rightSub)),
		rightSub:  make([]*Relabelling, len(r.leftSub)),
	}
	copy(n.leftPerm, r.rightPerm)
	copy(n.rightPerm, r.leftPerm)
	for i, sub := range r.rightSub {
		n.leftSub[i] = NegCongr(sub)
	}
	for i, sub := range r.leftSub {
		n.rightSub[i] = NegCongr(sub)
	}
	return n
}

// AddCongr combines a witness between w and x with one between y and z
// into a witness between w+y and x+z. Options of a sum come in two
// blocks, moves in the first component then moves in the second; the
// combined permutation maps block to block and each sub-witness keeps the
// untouched component whole.
func AddCongr(r1, r2 *Relabelling) *Relabelling {
	x1, y1 := r1.x, r1.y
	x2, y2 := r2.x, r2.y
	s := &Relabelling{x: Add(x1, x2), y: Add(y1, y2)}
	n1L, n2L := len(x1.left), len(x2.left)
	s.leftPerm = make([]int, n1L+n2L)
	s.leftSub = make([]*Relabelling, n1L+n2L)
	for i := 0; i < n1L; i++ {
		s.leftPerm[i] = r1.leftPerm[i]
		s.leftSub[i] = AddCongr(r1.leftSub[i], r2)
	}
	for k := 0; k < n2L; k++ {
		s.leftPerm[n1L+k] = n1L + r2.leftPerm[k]
		s.leftSub[n1L+k] = AddCongr(r1, r2.leftSub[k])
	}
	n1R, n2R := len(x1.right), len(x2.right)
	s.rightPerm = make([]int, n1R+n2R)
	s.rightSub = make([]*Relabelling, n1R+n2R)
	for i := 0; i < n1R; i++ {
		s.rightPerm[i] = r1.rightPerm[i]
		s.rightSub[i] = AddCongr(r1.rightSub[i], r2)
	}
	for k := 0; k < n2R; k++ {
		s.rightPerm[n1R+k] = n1R + r2.rightPerm[k]
		s.rightSub[n1R+k] = AddCongr(r1, r2.rightSub[k])
	}
	return s
}

// AddZeroWitness returns the witness that x+0 has exactly the moves of x:
// the zero component contributes no options, so both permutations are
// identities and each sub-witness relates the summed option to the bare
// one.
func AddZeroWitness(x *Game) *Relabelling {
	r := &Relabelling{
		x:         Add(x, zeroGame),
		y:         x,
		leftPerm:  identityPerm(len(x.left)),
		rightPerm: identityPerm(len(x.right)),
		leftSub:   make([]*Relabelling, len(x.left)),
		rightSub:  make([]*Relabelling, len(x.right)),
	}
	for i, o := range x.left {
		r.leftSub[i] = AddZeroWitness(o)
	}
	for i, o := range x.right {
		r.rightSub[i] = AddZeroWitness(o)
	}
	return r
}

// ZeroAddWitness returns the witness that 0+x has exactly the moves of x,
// the mirror of AddZeroWitness.
func ZeroAddWitness(x *Game) *Relabelling {
	r := &Relabelling{
		x:         Add(zeroGame, x),
		y:         x,
		leftPerm:  identityPerm(len(x.left)),
		rightPerm: identityPerm(len(x.right)),
		leftSub:   make([]*Relabelling, len(x.left)),
		rightSub:  make([]*Relabelling, len(x.right)),
	}
	for i, o := range x.left {
		r.leftSub[i] = ZeroAddWitness(o)
	}
	for i, o := range x.right {
		r.rightSub[i] = ZeroAddWitness(o)
	}
	return r
}

// AddCommWitness returns the witness that x+y and y+x are the same game
// with the two blocks of options swapped.
func AddCommWitness(x, y *Game) *Relabelling {
	r := &Relabelling{x: Add(x, y), y: Add(y, x)}
	nxL, nyL := len(x.left), len(y.left)
	r.leftPerm = make([]int, nxL+nyL)
	r.leftSub = make([]*Relabelling, nxL+nyL)
	for i, xl := range x.left {
		r.leftPerm[i] = nyL + i
		r.leftSub[i] = AddCommWitness(xl, y)
	}
	for k, yl := range y.left {
		r.leftPerm[nxL+k] = k
		r.leftSub[nxL+k] = AddCommWitness(x, yl)
	}
	nxR, nyR := len(x.right), len(y.right)
	r.rightPerm = make([]int, nxR+nyR)
	r.rightSub = make([]*Relabelling, nxR+nyR)
	for i, xr := range x.right {
		r.rightPerm[i] = nyR + i
		r.rightSub[i] = AddCommWitness(xr, y)
	}
	for k, yr := range y.right {
		r.rightPerm[nxR+k] = k
		r.rightSub[nxR+k] = AddCommWitness(x, yr)
	}
	return r
}

// AddAssocWitness returns the witness that (x+y)+z and x+(y+z) carry the
// same options. Flattened, both sums offer the moves of x, then y, then z
// in that order, so the permutations are identities and only the grouping
// inside each option changes.
func AddAssocWitness(x, y, z *Game) *Relabelling {
	nL := len(x.left) + len(y.left) + len(z.left)
	nR := len(x.right) + len(y.right) + len(z.right)
	r := &Relabelling{
		x:         Add(Add(x, y), z),
		y:         Add(x, Add(y, z)),
		leftPerm:  identityPerm(nL),
		rightPerm: identityPerm(nR),
		leftSub:   make([]*Relabelling, 0, nL),
		rightSub:  make([]*Relabelling, 0, nR),
	}
	for _, xl := range x.left {
		r.leftSub = append(r.leftSub, AddAssocWitness(xl, y, z))
	}
	for _, yl := range y.left {
		r.leftSub = append(r.leftSub, AddAssocWitness(x, yl, z))
	}
	for _, zl := range z.left {
		r.leftSub = append(r.leftSub, AddAssocWitness(x, y, zl))
	}
	for _, xr := range x.right {
		r.rightSub = append(r.rightSub, AddAssocWitness(xr, y, z))
	}
	for _, yr := range y.right {
		r.rightSub = append(r.rightSub, AddAssocWitness(x, yr, z))
	}
	for _, zr := range z.right {
		r.rightSub = append(r.rightSub, AddAssocWitness(x, y, zr))
	}
	return r
}

// NegAddWitness returns the witness that -(x+y) and (-x)+(-y) are the
// same game: negation distributes over the blocks of a sum without
// reordering them.
func NegAddWitness(x, y *Game) *Relabelling {
	nL := len(x.right) + len(y.right)
	nR := len(x.left) + len(y.left)
	r := &Relabelling{
		x:         Neg(Add(x, y)),
		y:         Add(Neg(x), Neg(y)),
		leftPerm:  identityPerm(nL),
		rightPerm: identityPerm(nR),
		leftSub:   make([]*Relabelling, 0, nL),
		rightSub:  make([]*Relabelling, 0, nR),
	}
	for _, xr := range x.right {
		r.leftSub = append(r.leftSub, NegAddWitness(xr, y))
	}
	for _, yr := range y.right {
		r.leftSub = append(r.leftSub, NegAddWitness(x, yr))
	}
	for _, xl := range x.left {
		r.rightSub = append(r.rightSub, NegAddWitness(xl, y))
	}
	for _, yl := range y.left {
		r.rightSub = append(r.rightSub, NegAddWitness(x, yl))
	}
	return r
}
