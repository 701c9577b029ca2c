package resolver

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ttlCache is a thread-safe, bounded, TTL-expiring cache for resolved source
// values. Recency-ordered so eviction under the size bound drops the least
// recently used entry. The clock is injected so tests can control expiry.
type ttlCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	key      string
	value    any
	storedAt time.Time
	prev     *entry
	next     *entry
}

func newTTLCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *ttlCache {
	return &ttlCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

// get returns the cached value if present and younger than the TTL. Expired
// entries are removed on access.
func (c *ttlCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Since(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		c.remove(e)
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

// put stores a value, refreshing its TTL. Last writer wins per key.
func (c *ttlCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.storedAt = c.clock.Now()
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, storedAt: c.clock.Now()}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *ttlCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *ttlCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *ttlCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *ttlCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
