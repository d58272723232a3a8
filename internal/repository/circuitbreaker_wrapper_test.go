//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openBreaker returns a breaker that is already open and stays open for the test.
func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
	})
	_ = cb.Execute(context.Background(), func() error { return errors.New("mongo down") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestCapacityTablesWrapper_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	cb := openBreaker(t)
	wrapped := NewCapacityTablesRepositoryWithCircuitBreaker(nil, cb)

	doc, err := wrapped.GetActive(ctx)
	assert.NoError(t, err, "an open circuit falls back to the configured table")
	assert.Nil(t, doc)

	_, err = wrapped.Create(ctx, "v1", []model.CapacityClass{{Size: "20ft", MaxVolume: 33, MaxWeight: 18000}}, "test")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	_, err = wrapped.List(ctx, 10)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	assert.Same(t, cb, wrapped.GetCircuitBreaker())
}

func TestDestinationsWrapper_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	wrapped := NewDestinationsRepositoryWithCircuitBreaker(nil, openBreaker(t))

	ok, err := wrapped.Supports(ctx, "DST-1", model.TransportSea, "20ft", false)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.False(t, ok)

	assert.ErrorIs(t, wrapped.Upsert(ctx, DestinationDocument{ID: "DST-1"}), circuitbreaker.ErrCircuitOpen)

	_, err = wrapped.List(ctx)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestOrdersWrapper_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	wrapped := NewOrdersRepositoryWithCircuitBreaker(nil, openBreaker(t))

	receipt, err := wrapped.Insert(ctx, "session-1", model.SubmissionPayload{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Empty(t, receipt.OrderID)

	_, err = wrapped.Get(ctx, "order-1")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestLogsWrapper_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	wrapped := NewLogsRepositoryWithCircuitBreaker(nil, openBreaker(t))

	assert.NoError(t, wrapped.Create(ctx, &model.LogEntry{Message: "dropped"}))
	assert.NoError(t, wrapped.CreateMany(ctx, []*model.LogEntry{{Message: "dropped"}}))

	_, err := wrapped.Query(ctx, model.LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	_, err = wrapped.Count(ctx, model.LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestWrappers_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewOrdersRepositoryWithCircuitBreaker(nil, cb)

	_, err := wrapped.Get(ctx, "order-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, cb.IsOpen())
}
