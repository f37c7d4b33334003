package game

import "sync"

// Cache memoizes comparison results keyed by digest pairs. Orderings are
// pure functions of game value and invariant under relabelling, exactly
// what digests identify, so an entry never goes stale and one cache can
// serve unrelated queries for the life of a process. Sums reuse
// subpositions heavily, which turns the exponential naive recursion over
// a sum into one visit per distinct pair. The zero value is not usable;
// call NewCache. All methods are safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	orderings map[digestPair]Ordering
}

type digestPair struct{ x, y Digest }

// NewCache returns an empty comparison cache.
func NewCache() *Cache {
	return &Cache{orderings: make(map[digestPair]Ordering)}
}

// Compare classifies x against y like the package-level Compare, with
// every pair the recursion touches answered through and recorded in the
// cache.
func (c *Cache) Compare(x, y *Game) Ordering {
	if o, ok := c.lookup(x.digest, y.digest); ok {
		return o
	}
	o := orderingOf(c.leProbe(x, y), c.leProbe(y, x))
	c.mu.Lock()
	c.orderings[digestPair{x.digest, y.digest}] = o
	c.mu.Unlock()
	return o
}

// Outcome classifies g against Zero through the cache.
func (c *Cache) Outcome(g *Game) Outcome {
	return outcomeFromOrdering(c.Compare(g, zeroGame))
}

// lookup consults the cache in both orientations; a hit on the swapped
// pair comes back through Swap.
func (c *Cache) lookup(x, y Digest) (Ordering, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if o, ok := c.orderings[digestPair{x, y}]; ok {
		return o, true
	}
	if o, ok := c.orderings[digestPair{y, x}]; ok {
		return o.Swap(), true
	}
	return 0, false
}

// le answers x <= y through the cache.
func (c *Cache) le(x, y *Game) bool {
	switch c.Compare(x, y) {
	case OrderLt, OrderEquiv:
		return true
	default:
		return false
	}
}

// leProbe is the Le recursion with its subqueries routed through the
// cache. The lock is never held across recursion, so concurrent callers
// may duplicate a computation but cannot deadlock.
func (c *Cache) leProbe(x, y *Game) bool {
	for _, xl := range x.left {
		if c.le(y, xl) {
			return false
		}
	}
	for _, yr := range y.right {
		if c.le(yr, x) {
			return false
		}
	}
	return true
}

// Len reports the number of cached pairs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.orderings)
}

// Reset discards all cached pairs.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orderings = make(map[digestPair]Ordering)
}
