// Package analyze runs all-pairs comparisons over a book of positions.
//
// A Runner walks every unordered pair of a book (self-pairs included),
// classifies each pair with a memoizing comparator, and optionally
// records positions, comparisons, and the run itself in a store. Each
// comparison is stamped with a strictly increasing seq from a logical
// clock, so the resulting trace is deterministic for a given book.
//
// Run tokens come from a TokenGenerator: UUIDv7 tokens in production,
// fixed sequences in tests.
package analyze
