package service

import (
	"testing"
	"time"

	"github.com/guttosm/container-order-service/internal/capacity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *OrderSession {
	t.Helper()
	return newOrderSession(newTestEngine(t, dry20Spec))
}

func TestNewSessionStore_Defaults(t *testing.T) {
	store := NewSessionStore(0, 0)
	defer store.Stop()

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, DefaultSessionCapacity, store.sessions.Metrics().Capacity)
}

func TestSessionStore_PutGetDelete(t *testing.T) {
	store := NewSessionStore(64, time.Hour)
	defer store.Stop()

	sess := newTestSession(t)
	store.Put(sess)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_HoldsFullCapacity(t *testing.T) {
	const capacity = 64
	store := NewSessionStore(capacity, time.Hour)
	defer store.Stop()

	sessions := make([]*OrderSession, capacity)
	for i := range sessions {
		sessions[i] = newTestSession(t)
		store.Put(sessions[i])
	}

	assert.Equal(t, capacity, store.Len())
	for _, sess := range sessions {
		_, ok := store.Get(sess.ID)
		assert.True(t, ok, "session %s lost below capacity", sess.ID)
	}

	extra := newTestSession(t)
	store.Put(extra)

	assert.Equal(t, capacity, store.Len())
	_, ok := store.Get(sessions[0].ID)
	assert.False(t, ok, "least recently used session dropped once over capacity")
	sessions[0].mu.Lock()
	assert.True(t, sessions[0].closed)
	sessions[0].mu.Unlock()
	_, ok = store.Get(extra.ID)
	assert.True(t, ok)
}

func TestSessionStore_ExpiryClosesSession(t *testing.T) {
	store := NewSessionStore(64, 20*time.Millisecond)
	defer store.Stop()

	sess := newTestSession(t)
	store.Put(sess)
	time.Sleep(40 * time.Millisecond)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	assert.True(t, sess.closed)
}

func TestNewOrderSession(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, dry20Spec, a.spec)
	assert.Equal(t, a.createdAt, a.updatedAt)
}

func TestOrderSession_View(t *testing.T) {
	sess := newTestSession(t)
	require.True(t, sess.engine.AcceptVariant(0, ambient("V1", 0.0136, 20, "12.50"), 100, "").Accepted)
	require.True(t, sess.engine.OpenNewContainer(0).Accepted)

	view := sess.view()

	assert.Equal(t, sess.ID, view.ID)
	assert.Equal(t, 1, view.ActiveIndex)
	require.Len(t, view.Containers, 2)
	assert.False(t, view.Containers[0].Active)
	assert.True(t, view.Containers[1].Active)
	assert.Equal(t, 100, view.BoxCount)
	assert.Equal(t, "1250", view.TotalPrice.String())

	// snapshots do not alias the order
	view.Containers[0].LineItems[0].Quantity = 1
	assert.Equal(t, 100, sess.engine.Order().Containers[0].Items[0].Quantity)

	table := capacity.Default()
	class, err := table.Lookup("20ft", false)
	require.NoError(t, err)
	assert.Equal(t, class, view.Containers[1].CapacityClass)
}
