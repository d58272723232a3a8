package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

// Sharded distributes string-keyed entries across several TTLCaches to reduce
// lock contention. Capacity is enforced over all shards together: once the
// total is exceeded the least recently used entry of any shard is evicted.
type Sharded[V any] struct {
	shards    []*TTLCache[string, V]
	numShards int
	shardMask uint32
	capacity  int

	evictMu sync.Mutex
}

// NewSharded creates a sharded cache with the given total capacity, TTL and number
// of shards. numShards is rounded up to a power of 2.
func NewSharded[V any](capacity int, ttl time.Duration, numShards int, opts ...Option[string, V]) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	capacity = max(capacity, 1)

	// Every shard may hold the whole capacity; Set trims the total.
	shards := make([]*TTLCache[string, V], numShards)
	for i := range shards {
		shards[i] = NewTTLCache[string, V](capacity, ttl, opts...)
	}

	return &Sharded[V]{
		shards:    shards,
		numShards: numShards,
		shardMask: uint32(numShards - 1),
		capacity:  capacity,
	}
}

type shardEviction[V any] struct {
	shard *TTLCache[string, V]
	entry *entry[string, V]
}

func (s *Sharded[V]) shard(key string) *TTLCache[string, V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the appropriate shard, then evicts least recently used
// entries until the total fits the capacity. Eviction hooks run after the
// eviction lock is released.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)

	var victims []shardEviction[V]

	s.evictMu.Lock()
	for s.Len() > s.capacity {
		shard := s.oldestShard()
		if shard == nil {
			break
		}
		e, ok := shard.takeOldest()
		if !ok {
			break
		}
		victims = append(victims, shardEviction[V]{shard, e})
	}
	s.evictMu.Unlock()

	for _, v := range victims {
		v.shard.evicted(v.entry, EvictCapacity)
	}
}

// oldestShard returns the shard holding the least recently used entry.
func (s *Sharded[V]) oldestShard() *TTLCache[string, V] {
	var (
		victim *TTLCache[string, V]
		oldest uint64
	)
	for _, shard := range s.shards {
		lastUse, ok := shard.oldest()
		if ok && (victim == nil || lastUse < oldest) {
			victim, oldest = shard, lastUse
		}
	}
	return victim
}

// Invalidate removes a key from the appropriate shard.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (s *Sharded[V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stop gracefully shuts down all shards.
func (s *Sharded[V]) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Len returns the number of entries across all shards.
func (s *Sharded[V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Metrics returns aggregated metrics from all shards.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
	}
	total.Capacity = s.capacity
	return total
}
