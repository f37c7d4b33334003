package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permutedPair builds the same game twice with the Left options in
// different orders: {1,*|0} and {*,1|0}.
func permutedPair() (*Game, *Game) {
	x := New([]*Game{One(), Star()}, []*Game{Zero()})
	y := New([]*Game{Star(), One()}, []*Game{Zero()})
	return x, y
}

func TestReflWitness(t *testing.T) {
	for _, g := range []*Game{Zero(), One(), Star(), Up(), Dyadic(3, 2)} {
		r := Refl(g)
		x, y := r.Games()
		assert.True(t, Equal(x, g))
		assert.True(t, Equal(y, g))

		leXY, leYX := r.Equiv()
		assert.True(t, leXY)
		assert.True(t, leYX)
	}
}

func TestDetectFindsPermutedTrees(t *testing.T) {
	x, y := permutedPair()

	r, ok := Detect(x, y)
	require.True(t, ok)

	gx, gy := r.Games()
	assert.True(t, Equal(gx, x))
	assert.True(t, Equal(gy, y))

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)

	// The derived facts agree with the order engine.
	assert.True(t, Le(x, y))
	assert.True(t, Le(y, x))
}

func TestDetectHandlesDeepReordering(t *testing.T) {
	inner1 := New([]*Game{One(), Star()}, nil)
	inner2 := New([]*Game{Star(), One()}, nil)
	x := New([]*Game{inner1, Zero()}, []*Game{inner1})
	y := New([]*Game{Zero(), inner2}, []*Game{inner2})

	r, ok := Detect(x, y)
	require.True(t, ok)
	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestDetectRejectsDifferentGames(t *testing.T) {
	tests := []struct {
		name string
		x, y *Game
	}{
		{"zero vs star", Zero(), Star()},
		{"one vs minus one", One(), Int(-1)},
		{"star vs up", Star(), Up()},
		{"multiplicity", New([]*Game{Star()}, nil), New([]*Game{Star(), Star()}, nil)},
		// Equivalent in value yet structurally unrelated.
		{"bracket vs zero", New([]*Game{Int(-1)}, []*Game{One()}), Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Detect(tt.x, tt.y)
			assert.False(t, ok)
			assert.Nil(t, r)
		})
	}
}

func TestDetectAgreesWithDigest(t *testing.T) {
	games := dayTwo()
	for i := 0; i < len(games); i += 5 {
		for j := 0; j < len(games); j += 5 {
			x, y := games[i], games[j]
			_, ok := Detect(x, y)
			if ok != (x.Digest() == y.Digest()) {
				t.Fatalf("Detect and digest disagree on %s vs %s", x.Digest(), y.Digest())
			}
		}
	}
}

func TestSymmInvertsWitness(t *testing.T) {
	x, y := permutedPair()
	r, ok := Detect(x, y)
	require.True(t, ok)

	s := r.Symm()
	gx, gy := s.Games()
	assert.True(t, Equal(gx, y))
	assert.True(t, Equal(gy, x))

	leXY, leYX := s.Equiv()
	assert.True(t, leXY && leYX)

	back := s.Symm()
	assert.Equal(t, r.leftPerm, back.leftPerm)
	assert.Equal(t, r.rightPerm, back.rightPerm)
}

func TestTransComposesWitnesses(t *testing.T) {
	a := New([]*Game{One(), Star(), Zero()}, nil)
	b := New([]*Game{Star(), Zero(), One()}, nil)
	c := New([]*Game{Zero(), One(), Star()}, nil)

	r1, ok := Detect(a, b)
	require.True(t, ok)
	r2, ok := Detect(b, c)
	require.True(t, ok)

	r, err := Trans(r1, r2)
	require.NoError(t, err)

	gx, gy := r.Games()
	assert.True(t, Equal(gx, a))
	assert.True(t, Equal(gy, c))

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestTransRejectsMismatchedMiddle(t *testing.T) {
	x, y := permutedPair()
	r1, ok := Detect(x, y)
	require.True(t, ok)

	_, err := Trans(r1, Refl(Star()))
	require.Error(t, err)

	var werr *WitnessError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, ErrCodeMiddle, werr.Code)
}

func TestNewRelabellingValid(t *testing.T) {
	x, y := permutedPair()

	subOne, ok := Detect(One(), One())
	require.True(t, ok)
	subStar, ok := Detect(Star(), Star())
	require.True(t, ok)

	r, err := NewRelabelling(x, y,
		[]int{1, 0}, []int{0},
		[]*Relabelling{subOne, subStar}, []*Relabelling{Refl(Zero())})
	require.NoError(t, err)

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestNewRelabellingErrors(t *testing.T) {
	x, y := permutedPair()

	tests := []struct {
		name      string
		x, y      *Game
		leftPerm  []int
		rightPerm []int
		leftSub   []*Relabelling
		rightSub  []*Relabelling
		wantCode  string
	}{
		{
			name: "left cardinality",
			x:    One(), y: Zero(),
			wantCode: ErrCodeCardinality,
		},
		{
			name: "right cardinality",
			x:    New(nil, []*Game{Zero()}), y: Zero(),
			wantCode: ErrCodeCardinality,
		},
		{
			name: "perm wrong length",
			x:    x, y: y,
			leftPerm: []int{0}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(One()), Refl(Star())},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeBijection,
		},
		{
			name: "perm repeats an index",
			x:    x, y: y,
			leftPerm: []int{1, 1}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(One()), Refl(Star())},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeBijection,
		},
		{
			name: "perm out of range",
			x:    x, y: y,
			leftPerm: []int{1, 2}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(One()), Refl(Star())},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeBijection,
		},
		{
			name: "nil sub-witness",
			x:    x, y: y,
			leftPerm: []int{1, 0}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(One()), nil},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeLinkage,
		},
		{
			name: "sub-witness relates wrong games",
			x:    x, y: y,
			leftPerm: []int{1, 0}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(Star()), Refl(One())},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeLinkage,
		},
		{
			name: "identity perm links mismatched options",
			x:    x, y: y,
			leftPerm: []int{0, 1}, rightPerm: []int{0},
			leftSub:  []*Relabelling{Refl(One()), Refl(Star())},
			rightSub: []*Relabelling{Refl(Zero())},
			wantCode: ErrCodeLinkage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRelabelling(tt.x, tt.y, tt.leftPerm, tt.rightPerm, tt.leftSub, tt.rightSub)
			require.Error(t, err)

			var werr *WitnessError
			require.True(t, errors.As(err, &werr))
			assert.Equal(t, tt.wantCode, werr.Code)
		})
	}
}

func TestEquivRejectsCorruptedWitness(t *testing.T) {
	r := Refl(Star())
	r.leftPerm[0] = 7

	leXY, leYX := r.Equiv()
	assert.False(t, leXY)
	assert.False(t, leYX)
}

func TestNegCongr(t *testing.T) {
	x, y := permutedPair()
	r, ok := Detect(x, y)
	require.True(t, ok)

	n := NegCongr(r)
	gx, gy := n.Games()
	assert.True(t, Equal(gx, Neg(x)))
	assert.True(t, Equal(gy, Neg(y)))

	leXY, leYX := n.Equiv()
	assert.True(t, leXY && leYX)
}

func TestAddCongr(t *testing.T) {
	w, x := permutedPair()
	y := New([]*Game{Zero(), Star()}, nil)
	z := New([]*Game{Star(), Zero()}, nil)

	r1, ok := Detect(w, x)
	require.True(t, ok)
	r2, ok := Detect(y, z)
	require.True(t, ok)

	s := AddCongr(r1, r2)
	gx, gy := s.Games()
	assert.True(t, Equal(gx, Add(w, y)))
	assert.True(t, Equal(gy, Add(x, z)))

	leXY, leYX := s.Equiv()
	assert.True(t, leXY && leYX)
}

func TestAddZeroWitness(t *testing.T) {
	for _, g := range []*Game{Zero(), One(), Star(), Up(), New([]*Game{One()}, []*Game{Int(-1)})} {
		r := AddZeroWitness(g)
		gx, gy := r.Games()
		assert.True(t, Equal(gx, Add(g, Zero())))
		assert.True(t, Equal(gy, g))

		leXY, leYX := r.Equiv()
		assert.True(t, leXY && leYX)
	}
}

func TestZeroAddWitness(t *testing.T) {
	for _, g := range []*Game{Zero(), Star(), New([]*Game{One()}, []*Game{Int(-1)})} {
		r := ZeroAddWitness(g)
		gx, gy := r.Games()
		assert.True(t, Equal(gx, Add(Zero(), g)))
		assert.True(t, Equal(gy, g))

		leXY, leYX := r.Equiv()
		assert.True(t, leXY && leYX)
	}
}

func TestAddCommWitness(t *testing.T) {
	x := New([]*Game{One()}, []*Game{Int(-1)})
	y := Up()

	r := AddCommWitness(x, y)
	gx, gy := r.Games()
	assert.True(t, Equal(gx, Add(x, y)))
	assert.True(t, Equal(gy, Add(y, x)))

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestAddAssocWitness(t *testing.T) {
	x, y, z := One(), Star(), Half()

	r := AddAssocWitness(x, y, z)
	gx, gy := r.Games()
	assert.True(t, Equal(gx, Add(Add(x, y), z)))
	assert.True(t, Equal(gy, Add(x, Add(y, z))))

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestNegAddWitness(t *testing.T) {
	x := New([]*Game{One()}, []*Game{Star()})
	y := Half()

	r := NegAddWitness(x, y)
	gx, gy := r.Games()
	assert.True(t, Equal(gx, Neg(Add(x, y))))
	assert.True(t, Equal(gy, Add(Neg(x), Neg(y))))

	leXY, leYX := r.Equiv()
	assert.True(t, leXY && leYX)
}

func TestWitnessEquivMatchesOrderEngine(t *testing.T) {
	games := dayTwo()
	for i := 0; i < len(games); i += 32 {
		g := games[i]
		r := AddZeroWitness(g)
		leXY, leYX := r.Equiv()

		s := Add(g, Zero())
		assert.Equal(t, Le(s, g), leXY)
		assert.Equal(t, Le(g, s), leYX)
	}
}
