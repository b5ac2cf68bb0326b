package tilecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(c *Cache, key int) {
	c.Put(key, []byte{byte(key)})
}

func TestGetPut(t *testing.T) {
	c := New(4)
	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Put(1, []byte{0xAA})
	data, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte{0xAA}, data)
	assert.Equal(t, 1, c.Len())
}

func TestCapacityEvictsOldest(t *testing.T) {
	c := New(3)
	for key := 1; key <= 4; key++ {
		put(c, key)
	}

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok, "first-inserted key must be evicted")
	for key := 2; key <= 4; key++ {
		_, ok := c.Get(key)
		assert.True(t, ok, "key %d should survive", key)
	}
}

func TestGetDoesNotRefreshEvictionOrder(t *testing.T) {
	// Distinguishes FIFO from LRU: repeated gets on the oldest entry must
	// not save it from eviction.
	c := New(3)
	put(c, 1)
	put(c, 2)
	put(c, 3)

	for i := 0; i < 10; i++ {
		_, ok := c.Get(1)
		require.True(t, ok)
	}

	put(c, 4)
	_, ok := c.Get(1)
	assert.False(t, ok, "get must not refresh insertion order")
	_, ok = c.Get(2)
	assert.True(t, ok)
}

func TestRePutKeepsOrderAndCount(t *testing.T) {
	c := New(3)
	put(c, 1)
	put(c, 2)
	put(c, 3)

	c.Put(1, []byte{0xEE})
	assert.Equal(t, 3, c.Len())
	data, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte{0xEE}, data)

	// Key 1 is still the oldest insertion: it goes first.
	put(c, 4)
	_, ok = c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
}

func TestDefaultCapacity(t *testing.T) {
	c := New(0)
	for key := 0; key <= DefaultCapacity; key++ {
		put(c, key)
	}
	assert.Equal(t, DefaultCapacity, c.Len())
	_, ok := c.Get(0)
	assert.False(t, ok)
}
