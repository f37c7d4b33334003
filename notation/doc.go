// Package notation reads and writes the bracket notation for games.
//
// A game is either an atom or a pair of comma-separated option lists
// inside braces:
//
//	{|}            the zero game, also written 0
//	{0|}           the integer 1
//	{0|0}          star, also written *
//	{1,*|{0|-2}}   anything else
//
// Atoms are integers ("3", "-12"), dyadic rationals with a power-of-two
// denominator ("1/2", "-3/4"), nimbers ("*", "*2"), up ("^") and down
// ("v"). Atoms denote the canonical trees built by the game package
// constructors. Whitespace between tokens is ignored and input is
// normalized to NFC before scanning.
//
// Format renders a tree back into this notation, using an atom whenever
// the tree's digest class has one; otherwise options appear in
// construction order. Canonical does the same with the options of each
// node sorted by their rendering, so games with equal digests render
// identically. Parsing a rendering always rebuilds the same digest class,
// and rebuilds an Equal tree whenever the input tree came from Parse or
// the game constructors.
package notation
