package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/container-order-service/internal/metrics"
)

// Option configures a TTLCache.
type Option[K comparable, V any] func(*TTLCache[K, V])

// WithName sets the label under which the cache reports metrics.
func WithName[K comparable, V any](name string) Option[K, V] {
	return func(c *TTLCache[K, V]) {
		if name != "" {
			c.name = name
		}
	}
}

// EvictReason tells why an entry left the cache.
type EvictReason string

const (
	EvictCapacity EvictReason = "capacity"
	EvictExpired  EvictReason = "expired"
)

// WithEvictionHook registers fn to run after an entry leaves the cache through
// capacity eviction or expiry. fn runs without the cache lock held.
func WithEvictionHook[K comparable, V any](fn func(key K, value V, reason EvictReason)) Option[K, V] {
	return func(c *TTLCache[K, V]) {
		c.onEvict = fn
	}
}

// WithClock replaces time.Now as the source of expiry times.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *TTLCache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSlidingExpiration refreshes an entry's TTL on every successful Get.
func WithSlidingExpiration[K comparable, V any]() Option[K, V] {
	return func(c *TTLCache[K, V]) {
		c.sliding = true
	}
}

// useCounter orders reads and writes across every cache so entries of
// different caches can be compared by recency.
var useCounter atomic.Uint64

// TTLCache provides thread-safe LRU caching with TTL expiration.
// It combines LRU eviction with time-based expiration for bounded memory use.
type TTLCache[K comparable, V any] struct {
	mu        sync.RWMutex
	name      string
	capacity  int
	ttl       time.Duration
	sliding   bool
	now       func() time.Time
	items     map[K]*entry[K, V]
	head      *entry[K, V]
	tail      *entry[K, V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	onEvict   func(K, V, EvictReason)
	hits      int64
	misses    int64
	evictions int64
}

// entry represents a single cached item with expiration tracking.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	lastUse   uint64
	prev      *entry[K, V]
	next      *entry[K, V]
}

// NewTTLCache creates a new TTL-based LRU cache with the specified capacity and TTL.
// A background goroutine periodically cleans up expired entries.
func NewTTLCache[K comparable, V any](capacity int, ttl time.Duration, opts ...Option[K, V]) *TTLCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &TTLCache[K, V]{
		name:     "default",
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[K]*entry[K, V], min(capacity, 1024)),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.startCleanup()
	return c
}

// Stop gracefully shuts down the cache and cleans up resources.
func (c *TTLCache[K, V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *TTLCache[K, V]) Metrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Len returns the number of entries, expired or not.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get retrieves a value from the cache if it exists and hasn't expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}

	current := c.now()
	if current.After(e.expiresAt) {
		c.removeEntry(e)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		c.evicted(e, EvictExpired)
		return zero, false
	}

	if c.sliding {
		e.expiresAt = current.Add(c.ttl)
	}
	e.lastUse = useCounter.Add(1)
	c.moveToFront(e)
	value := e.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set adds or updates a value in the cache with the configured TTL.
// If the cache is at capacity, the least recently used entry is evicted.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()

	current := c.now()
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = current.Add(c.ttl)
		e.lastUse = useCounter.Add(1)
		c.moveToFront(e)
		c.mu.Unlock()
		return
	}

	e := &entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: current.Add(c.ttl),
		lastUse:   useCounter.Add(1),
	}
	c.items[key] = e
	c.addToFront(e)

	var victim *entry[K, V]
	if len(c.items) > c.capacity {
		victim = c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
	}
	size := len(c.items)
	c.mu.Unlock()

	if victim != nil {
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
		c.evicted(victim, EvictCapacity)
	}
	metrics.RecordCacheOperation(c.name, "set", "success")
	metrics.UpdateCacheMetrics(c.name, size, c.capacity)
}

// Invalidate removes a specific key from the cache. The eviction hook does not run.
func (c *TTLCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
	}
}

// Clear removes all entries from the cache.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation(c.name, "clear", "success")
}

// startCleanup runs an adaptive background cleanup routine.
func (c *TTLCache[K, V]) startCleanup() {
	interval := time.Minute
	if c.ttl > 0 && c.ttl < interval {
		interval = c.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries from the cache.
func (c *TTLCache[K, V]) cleanup() {
	c.mu.Lock()
	currentTime := c.now()
	var expired []*entry[K, V]
	for _, e := range c.items {
		if currentTime.After(e.expiresAt) {
			c.removeEntry(e)
			expired = append(expired, e)
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	for _, e := range expired {
		metrics.RecordCacheOperation(c.name, "evict", "expired")
		c.evicted(e, EvictExpired)
	}
	if len(expired) > 0 {
		metrics.UpdateCacheMetrics(c.name, size, c.capacity)
	}
}

// oldest returns the use stamp of the least recently used entry.
func (c *TTLCache[K, V]) oldest() (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tail == nil {
		return 0, false
	}
	return c.tail.lastUse, true
}

// takeOldest removes the least recently used entry as a capacity eviction. The
// caller runs the eviction hook.
func (c *TTLCache[K, V]) takeOldest() (*entry[K, V], bool) {
	c.mu.Lock()
	victim := c.removeTail()
	size := len(c.items)
	c.mu.Unlock()
	if victim == nil {
		return nil, false
	}

	atomic.AddInt64(&c.evictions, 1)
	metrics.RecordCacheOperation(c.name, "evict", "capacity")
	metrics.UpdateCacheMetrics(c.name, size, c.capacity)
	return victim, true
}

func (c *TTLCache[K, V]) evicted(e *entry[K, V], reason EvictReason) {
	if c.onEvict != nil {
		c.onEvict(e.key, e.value, reason)
	}
}

// removeEntry removes an entry from both the map and the linked list.
func (c *TTLCache[K, V]) removeEntry(e *entry[K, V]) {
	delete(c.items, e.key)
	c.remove(e)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (c *TTLCache[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

// addToFront adds an entry to the front of the LRU list.
func (c *TTLCache[K, V]) addToFront(e *entry[K, V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// remove removes an entry from the linked list without touching the map.
func (c *TTLCache[K, V]) remove(e *entry[K, V]) {
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
	e.prev = nil
	e.next = nil
}

// removeTail removes and returns the least recently used entry.
func (c *TTLCache[K, V]) removeTail() *entry[K, V] {
	victim := c.tail
	if victim == nil {
		return nil
	}
	c.removeEntry(victim)
	return victim
}
