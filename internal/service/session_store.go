package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/logger"
	"github.com/guttosm/container-order-service/internal/metrics"
	"github.com/guttosm/container-order-service/internal/service/cache"
)

// Session store defaults.
const (
	DefaultSessionCapacity = 10000
	DefaultSessionTTL      = 2 * time.Hour
	sessionShards          = 16
)

// OrderSession is one buyer's order under composition. All access to the order
// goes through the session mutex. Every container of the order shares the
// transport mode and destination of spec.
type OrderSession struct {
	ID        string
	spec      model.ContainerSpec
	engine    *FillEngine
	createdAt time.Time

	mu         sync.Mutex
	updatedAt  time.Time
	closed     bool
	submitting bool
}

func newOrderSession(engine *FillEngine) *OrderSession {
	now := time.Now().UTC()
	return &OrderSession{
		ID:        uuid.NewString(),
		spec:      engine.Order().Initial(),
		engine:    engine,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *OrderSession) touch() {
	s.updatedAt = time.Now().UTC()
}

// SessionStore keeps in-progress orders in memory. Idle sessions expire after the
// TTL; the least recently used session is dropped once more than capacity
// sessions are stored.
type SessionStore struct {
	sessions *cache.Sharded[*OrderSession]
}

// NewSessionStore creates a session store. Non-positive values fall back to the defaults.
func NewSessionStore(capacity int, ttl time.Duration) *SessionStore {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	store := &SessionStore{}
	store.sessions = cache.NewSharded(capacity, ttl, sessionShards,
		cache.WithName[string, *OrderSession]("sessions"),
		cache.WithSlidingExpiration[string, *OrderSession](),
		cache.WithEvictionHook(func(id string, s *OrderSession, reason cache.EvictReason) {
			s.mu.Lock()
			s.closed = true
			s.mu.Unlock()
			l := logger.ForSession(id)
			event := l.Info()
			if reason == cache.EvictCapacity {
				event = l.Warn()
			}
			event.Str("reason", string(reason)).Msg("Order session evicted")
			metrics.SetActiveSessions(store.Len())
		}),
	)
	return store
}

// Put stores s.
func (st *SessionStore) Put(s *OrderSession) {
	st.sessions.Set(s.ID, s)
	metrics.SetActiveSessions(st.Len())
}

// Get returns the session with id.
func (st *SessionStore) Get(id string) (*OrderSession, bool) {
	return st.sessions.Get(id)
}

// Delete drops the session with id.
func (st *SessionStore) Delete(id string) {
	st.sessions.Invalidate(id)
	metrics.SetActiveSessions(st.Len())
}

// Len returns the number of stored sessions.
func (st *SessionStore) Len() int {
	return st.sessions.Len()
}

// Stop halts background expiry.
func (st *SessionStore) Stop() {
	st.sessions.Stop()
}
