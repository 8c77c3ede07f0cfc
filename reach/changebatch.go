package reach

// ChangeBatch is an accumulate-then-drain buffer of signed counts keyed by
// K, consolidating repeated updates to the same key into their net delta.
// It underlies the Tracker's buffered target/source changes and its pushed
// results.
//
// The zero value is not ready to use; construct with NewChangeBatch.
type ChangeBatch[K comparable] struct {
	counts map[K]int64
}

// NewChangeBatch returns an empty ChangeBatch.
func NewChangeBatch[K comparable]() *ChangeBatch[K] {
	return &ChangeBatch[K]{counts: make(map[K]int64)}
}

// Update records a delta at key, coalescing with any prior delta at the
// same key. O(1) amortized.
func (c *ChangeBatch[K]) Update(key K, delta int64) {
	next := c.counts[key] + delta
	if next == 0 {
		delete(c.counts, key)
	} else {
		c.counts[key] = next
	}
}

// IsEmpty reports whether every net delta currently buffered is zero.
func (c *ChangeBatch[K]) IsEmpty() bool {
	return len(c.counts) == 0
}

// KeyDelta pairs a ChangeBatch key with its net, nonzero delta.
type KeyDelta[K comparable] struct {
	Key   K
	Delta int64
}

// Drain returns every distinct key currently buffered with a nonzero net
// delta, exactly once each, and clears the buffer.
func (c *ChangeBatch[K]) Drain() []KeyDelta[K] {
	if len(c.counts) == 0 {
		return nil
	}
	out := make([]KeyDelta[K], 0, len(c.counts))
	for k, v := range c.counts {
		out = append(out, KeyDelta[K]{Key: k, Delta: v})
	}
	c.counts = make(map[K]int64)
	return out
}
