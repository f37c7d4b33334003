package analyze

import "sync/atomic"

// Clock is a monotonic logical clock for comparison ordering.
//
// Every comparison a run records is stamped with a strictly increasing
// seq number from this clock. This ensures:
// - Deterministic ordering (no wall-clock race conditions)
// - Re-running a book produces the identical trace
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the Runner's batch loop only calls Next() from one goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
// Calls are linearizable - each call returns a unique, increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
