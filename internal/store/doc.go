// Package store provides SQLite-backed durable storage for analysis
// results.
//
// The store keeps three tables:
//   - Positions: one row per distinct game tree, keyed by digest
//   - Comparisons: one row per unordered pair of digests
//   - Runs: one row per analysis run, keyed by run token
//
// Comparison rows are held in a canonical orientation, the one with
// x_digest <= y_digest under byte order. Writes swap the ordering as
// needed before inserting and reads swap it back when the query is
// reversed, so each unordered pair is stored exactly once.
//
// All ordering uses seq INTEGER (a logical clock), never timestamps,
// and every multi-row query carries a total ORDER BY. Two runs over
// the same book therefore produce byte-identical query results.
//
// Writes are idempotent: every INSERT uses ON CONFLICT DO NOTHING, so
// replaying a run against an existing database is harmless.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
