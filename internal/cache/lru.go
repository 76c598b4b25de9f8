package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LRU memoizes successful computations per key, bounded to a fixed capacity
// with least-recently-used eviction. Concurrent requests for the same missing
// key share a single computation. Failed computations are never stored, so the
// next request retries.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
	group    singleflight.Group
}

type entry[V any] struct {
	key   string
	value V
}

// New creates an LRU cache with the given capacity.
func New[V any](capacity int) *LRU[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the cached value for key, computing and storing it on a miss.
func (c *LRU[V]) Get(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have stored the value between the miss and
		// acquiring the flight.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		val, err := compute()
		if err != nil {
			return nil, err
		}
		c.store(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Contains reports whether key is cached, without refreshing its recency.
func (c *LRU[V]) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len reports the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRU[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[V]).value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[V]) store(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[V]).key)
		}
	}
	c.entries[key] = c.order.PushFront(&entry[V]{key: key, value: value})
}
