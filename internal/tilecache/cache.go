// Package tilecache bounds the number of decoded tile buffers held per
// grid. Eviction is strictly insertion-order (FIFO): a Get never refreshes
// an entry's position. Which tiles survive under memory pressure is part
// of the observable contract, so the policy is not LRU.
package tilecache

// DefaultCapacity is the per-grid entry limit used when none is given.
const DefaultCapacity = 64

// Cache is a bounded tile-key → decoded-bytes store. Not safe for
// concurrent use; the overlay engine is single-threaded by contract.
type Cache struct {
	max     int
	entries map[int][]byte
	order   []int // insertion order, oldest first
}

// New returns a cache holding at most max entries. Non-positive max falls
// back to DefaultCapacity.
func New(max int) *Cache {
	if max <= 0 {
		max = DefaultCapacity
	}
	return &Cache{
		max:     max,
		entries: make(map[int][]byte, max),
	}
}

// Get returns the cached bytes for key, if present.
func (c *Cache) Get(key int) ([]byte, bool) {
	data, ok := c.entries[key]
	return data, ok
}

// Put stores data under key. Inserting a new key at capacity evicts the
// oldest-inserted entry; re-putting an existing key replaces its value
// without touching the eviction order.
func (c *Cache) Put(key int, data []byte) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = data
		return
	}
	if len(c.entries) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = data
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
