package middleware

import (
	"sync"
	"time"

	"github.com/guttosm/container-order-service/internal/service/cache"
)

// idempotencyCache stores replayable responses and tracks keys whose first
// request is still running.
type idempotencyCache struct {
	responses *cache.TTLCache[string, *cachedResponse]
	mu        sync.Mutex
	inFlight  map[string]struct{}
}

// newIdempotencyCache creates an idempotency cache holding up to size responses for ttl.
func newIdempotencyCache(size int, ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		responses: cache.NewTTLCache[string, *cachedResponse](size, ttl,
			cache.WithName[string, *cachedResponse]("idempotency")),
		inFlight: make(map[string]struct{}),
	}
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	return c.responses.Get(key)
}

// Begin claims key for a new request. It returns false while another request
// with the same key is running.
func (c *idempotencyCache) Begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

// Finish releases key and stores resp for replay when it is not nil.
func (c *idempotencyCache) Finish(key string, resp *cachedResponse) {
	if resp != nil {
		c.responses.Set(key, resp)
	}
	c.mu.Lock()
	delete(c.inFlight, key)
	c.mu.Unlock()
}

// Stop stops the response cache janitor.
func (c *idempotencyCache) Stop() {
	c.responses.Stop()
}
