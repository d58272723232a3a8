//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errCatalogDown = errors.New("catalog down")
	succeed        = func() error { return nil }
	fail           = func() error { return errCatalogDown }
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

// newTestBreaker returns a breaker driven by a clock the test advances.
func newTestBreaker(cfg Config) (*CircuitBreaker, *testClock) {
	clock := &testClock{t: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}
	cb := New(cfg)
	cb.now = clock.now
	return cb, clock
}

func TestCircuitBreaker_Transitions(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Name: "catalog", FailureThreshold: 2, SuccessThreshold: 2, Timeout: 30 * time.Second}

	tests := []struct {
		name  string
		steps func(t *testing.T, cb *CircuitBreaker, clock *testClock)
		want  State
	}{
		{
			name: "success keeps it closed",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *testClock) {
				assert.NoError(t, cb.Execute(ctx, succeed))
			},
			want: StateClosed,
		},
		{
			name: "failures below threshold stay closed",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *testClock) {
				assert.ErrorIs(t, cb.Execute(ctx, fail), errCatalogDown)
			},
			want: StateClosed,
		},
		{
			name: "a success resets the failure streak",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *testClock) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, succeed)
				_ = cb.Execute(ctx, fail)
			},
			want: StateClosed,
		},
		{
			name: "consecutive failures open it and short-circuit calls",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *testClock) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)

				called := false
				err := cb.Execute(ctx, func() error { called = true; return nil })
				assert.ErrorIs(t, err, ErrCircuitOpen)
				assert.False(t, called)
			},
			want: StateOpen,
		},
		{
			name: "one probe success after the timeout leaves it half-open",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *testClock) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				clock.t = clock.t.Add(30 * time.Second)
				assert.NoError(t, cb.Execute(ctx, succeed))
			},
			want: StateHalfOpen,
		},
		{
			name: "enough probe successes close it",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *testClock) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				clock.t = clock.t.Add(30 * time.Second)
				_ = cb.Execute(ctx, succeed)
				_ = cb.Execute(ctx, succeed)
			},
			want: StateClosed,
		},
		{
			name: "a probe failure reopens it",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *testClock) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				clock.t = clock.t.Add(30 * time.Second)
				assert.ErrorIs(t, cb.Execute(ctx, fail), errCatalogDown)

				clock.t = clock.t.Add(29 * time.Second)
				assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen, "timeout restarts on reopen")
			},
			want: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(cfg)
			tt.steps(t, cb, clock)
			assert.Equal(t, tt.want, cb.State())
			assert.Equal(t, tt.want == StateOpen, cb.IsOpen())
		})
	}
}

func TestCircuitBreaker_HalfOpenCapsProbes(t *testing.T) {
	ctx := context.Background()
	cb, clock := newTestBreaker(Config{Name: "orders", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Second})

	_ = cb.Execute(ctx, fail)
	clock.t = clock.t.Add(time.Second)

	err := cb.Execute(ctx, func() error {
		assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen, "second probe rejected while the first runs")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_StaleOutcomeIgnored(t *testing.T) {
	ctx := context.Background()
	cb, _ := newTestBreaker(Config{Name: "orders", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute})

	err := cb.Execute(ctx, func() error {
		_ = cb.Execute(ctx, fail)
		require.True(t, cb.IsOpen())
		return nil
	})
	require.NoError(t, err)
	assert.True(t, cb.IsOpen(), "success from the closed generation must not affect the open breaker")
}

func TestCircuitBreaker_PanicCountsAsFailure(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "orders", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute})

	assert.PanicsWithValue(t, "boom", func() {
		_ = cb.Execute(context.Background(), func() error { panic("boom") })
	})
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	notFound := errors.New("variant not found")
	cb, _ := newTestBreaker(Config{
		Name:             "catalog",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return !errors.Is(err, notFound) },
	})

	for range 3 {
		assert.ErrorIs(t, cb.Execute(context.Background(), func() error { return notFound }), notFound)
	}
	assert.Equal(t, StateClosed, cb.State())

	_ = cb.Execute(context.Background(), fail)
	assert.True(t, cb.IsOpen())
	assert.Equal(t, "catalog", cb.Name())
}

func TestCircuitBreaker_Context(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "catalog", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = cb.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State(), "cancellation is not a dependency failure")
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb, clock := newTestBreaker(Config{Name: "capacity-tables", FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Minute})

	stats := cb.GetStats()
	assert.Equal(t, Stats{Name: "capacity-tables", State: "closed", IsHealthy: true}, stats)

	_ = cb.Execute(context.Background(), fail)
	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, clock.t, stats.LastFailure)
	assert.True(t, stats.IsHealthy)
}

func TestNew_ClampsThresholds(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "zero"})

	_ = cb.Execute(context.Background(), fail)
	assert.True(t, cb.IsOpen())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(7).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.FailureThreshold)
	assert.Equal(t, 2, cfg.SuccessThreshold)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type transition struct{ from, to State }
	var got []transition

	cfg := Config{
		Name:             "catalog",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          10 * time.Second,
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "catalog", name)
			got = append(got, transition{from, to})
		},
	}
	cb, clock := newTestBreaker(cfg)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	clock.t = clock.t.Add(10 * time.Second)
	_ = cb.Execute(ctx, succeed)

	assert.Equal(t, []transition{
		{StateClosed, StateClosed},
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, got)
}
