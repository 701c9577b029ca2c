package resolver

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestTTLCache_BasicGetPut(t *testing.T) {
	c := newTTLCache(3, time.Minute, clockwork.NewFakeClock())

	c.put("a", 1)
	c.put("b", 2)

	v, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestTTLCache_ExpiryRemovesEntry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newTTLCache(3, time.Minute, clock)

	c.put("a", 1)
	clock.Advance(time.Minute)

	_, ok := c.get("a")
	assert.False(t, ok, "entry at exactly the TTL is stale")

	// Re-putting after expiry works.
	c.put("a", 2)
	v, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTLCache_PutRefreshesAge(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newTTLCache(3, time.Minute, clock)

	c.put("a", 1)
	clock.Advance(45 * time.Second)
	c.put("a", 2)
	clock.Advance(45 * time.Second)

	v, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTLCache_BoundedSizeEvictsLRU(t *testing.T) {
	c := newTTLCache(2, time.Minute, clockwork.NewFakeClock())

	c.put("a", 1)
	c.put("b", 2)
	c.get("a") // promote
	c.put("c", 3)

	_, ok := c.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")

	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}
