package notation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/pregame/game"
)

// Format renders g in bracket notation, writing an atom whenever g's
// digest class has one and listing options in construction order
// otherwise.
func Format(g *game.Game) string {
	return render(g, false)
}

// Canonical renders g with the options of every node sorted by their own
// rendering. Atom recognition keys on the digest class, so two games have
// the same canonical form exactly when one is a relabelling of the other.
func Canonical(g *game.Game) string {
	return render(g, true)
}

func render(g *game.Game, sorted bool) string {
	if atom, ok := renderAtom(g); ok {
		return atom
	}
	left := make([]string, g.NumLeft())
	for i := range left {
		left[i] = render(g.MoveLeft(i), sorted)
	}
	right := make([]string, g.NumRight())
	for i := range right {
		right[i] = render(g.MoveRight(i), sorted)
	}
	if sorted {
		sort.Strings(left)
		sort.Strings(right)
	}
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(strings.Join(left, ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(right, ","))
	b.WriteByte('}')
	return b.String()
}

// renderAtom returns the atom for g's digest class, if it has one. Every
// recognizer here is insensitive to option order, so Format and Canonical
// agree on which trees are atoms.
func renderAtom(g *game.Game) (string, bool) {
	if n, ok := intValue(g); ok {
		return strconv.FormatInt(n, 10), true
	}
	if num, exp, ok := dyadicValue(g); ok {
		return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(1<<exp, 10), true
	}
	if game.Equal(g, game.Up()) {
		return "^", true
	}
	if game.Equal(g, game.Down()) {
		return "v", true
	}
	if n, ok := nimValue(g); ok {
		if n == 1 {
			return "*", true
		}
		return "*" + strconv.FormatUint(uint64(n), 10), true
	}
	return "", false
}

// intValue recognizes the integer trees built by game.Int: single chains
// of free moves for one player. Option families never exceed one entry,
// so order cannot vary.
func intValue(g *game.Game) (int64, bool) {
	switch {
	case g.NumLeft() == 0 && g.NumRight() == 0:
		return 0, true
	case g.NumLeft() == 1 && g.NumRight() == 0:
		if n, ok := intValue(g.MoveLeft(0)); ok && n >= 0 {
			return n + 1, true
		}
	case g.NumLeft() == 0 && g.NumRight() == 1:
		if n, ok := intValue(g.MoveRight(0)); ok && n <= 0 {
			return n - 1, true
		}
	}
	return 0, false
}

// dyadicValue recognizes the canonical dyadic trees built by game.Dyadic,
// excluding integers. Such a tree is {a|b} with a and b dyadic and the
// parent equal to their midpoint; reconstructing the candidate and
// comparing trees confirms the shape.
func dyadicValue(g *game.Game) (int64, uint, bool) {
	num, exp, ok := dyadicParts(g)
	if !ok || exp == 0 {
		return 0, 0, false
	}
	return num, exp, true
}

func dyadicParts(g *game.Game) (int64, uint, bool) {
	if n, ok := intValue(g); ok {
		return n, 0, true
	}
	if g.NumLeft() != 1 || g.NumRight() != 1 {
		return 0, 0, false
	}
	ln, le, ok := dyadicParts(g.MoveLeft(0))
	if !ok {
		return 0, 0, false
	}
	rn, re, ok := dyadicParts(g.MoveRight(0))
	if !ok {
		return 0, 0, false
	}
	exp := le
	if re > exp {
		exp = re
	}
	exp++
	if exp > 32 {
		return 0, 0, false
	}
	num := ln<<(exp-1-le) + rn<<(exp-1-re)
	if !game.Equal(g, game.Dyadic(num, exp)) {
		return 0, 0, false
	}
	for num != 0 && num%2 == 0 && exp > 0 {
		num /= 2
		exp--
	}
	return num, exp, true
}

// nimValue recognizes nimber digest classes: any reordering of game.Nim(n)
// for n from 2 up to the parser's atom bound.
func nimValue(g *game.Game) (uint, bool) {
	n := g.NumLeft()
	if n < 1 || n != g.NumRight() || n > maxNimAtom {
		return 0, false
	}
	if g.Digest() != game.Nim(uint(n)).Digest() {
		return 0, false
	}
	return uint(n), true
}
