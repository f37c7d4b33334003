// Package game implements finite combinatorial games in the style of
// Conway: a game is a tree of positions, each listing the moves available
// to Left and to Right, and everything else is derived from that tree by
// structural recursion.
//
// Three gradations of sameness run through the package, from finest to
// coarsest:
//
//   - Equal: identical trees, option order included.
//   - Relabelling (Detect, Refl, Symm, Trans): identical trees up to
//     reordering options, carried as an explicit witness.
//   - Equiv: equal value under the game order, however different the
//     trees.
//
// Every game carries a digest that names its relabelling class, so the
// middle notion is also a cheap equality test and a stable key for maps
// and stores. See Digest and Cache.
//
// The order engine rests on a single primitive, Le, from which Lf, Lt,
// Gt, Equiv, Fuzzy, Compare and OutcomeOf all follow. Arithmetic (Neg,
// Add, Sub) builds new trees; its algebraic laws hold up to Equiv, and
// where the law is purely structural the corresponding witness
// constructor (AddZeroWitness, AddCommWitness, AddAssocWitness,
// NegAddWitness, NegCongr, AddCongr) produces the relabelling instead of
// rerunning the order engine.
//
// All recursion descends along options, so it terminates on every finite
// tree; IsSubsequent names the descent relation. Games are immutable and
// safe for concurrent use throughout.
package game
