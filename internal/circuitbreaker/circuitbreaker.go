// Package circuitbreaker guards calls to the catalog and MongoDB so a failing
// dependency is skipped instead of slowing every order mutation.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned without calling the guarded function while the
// breaker is open, or while half-open and all probes are in flight.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the position of a breaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens a closed breaker.
	FailureThreshold int
	// SuccessThreshold is the number of probe successes that closes a half-open
	// breaker. It also caps the probes admitted at once.
	SuccessThreshold int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// Name labels logs and metrics.
	Name string
	// IsFailure decides whether an error counts against the breaker. Rejected
	// errors, such as a 404 from a healthy upstream, are returned unchanged
	// and recorded as successes. Nil counts every error.
	IsFailure func(error) bool
	// OnStateChange is called with the breaker lock held after every
	// transition. It must not call back into the breaker.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker is a consecutive-failure breaker. Each transition starts a
// new generation, and outcomes of calls admitted in an older generation are
// discarded.
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu          sync.RWMutex
	state       State
	generation  uint64
	failures    int
	successes   int
	probes      int
	lastFailure time.Time
	openedAt    time.Time
}

// New returns a closed breaker. The state change hook fires once so gauges
// start at closed.
func New(config Config) *CircuitBreaker {
	config.FailureThreshold = max(config.FailureThreshold, 1)
	config.SuccessThreshold = max(config.SuccessThreshold, 1)
	cb := &CircuitBreaker{config: config, now: time.Now}
	if config.OnStateChange != nil {
		config.OnStateChange(config.Name, StateClosed, StateClosed)
	}
	return cb
}

// Execute runs fn unless the breaker rejects the call. A done ctx is returned
// before fn is considered. Errors from fn are returned as-is.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	generation, err := cb.admit()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			cb.record(generation, true)
			panic(r)
		}
	}()

	err = fn()
	cb.record(generation, err != nil && cb.countsAsFailure(err))
	return err
}

// admit reserves a slot for one call and returns the generation it belongs to.
func (cb *CircuitBreaker) admit() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
			return 0, ErrCircuitOpen
		}
		cb.transition(StateHalfOpen, "Circuit breaker probing")
	}
	if cb.state == StateHalfOpen {
		if cb.probes >= cb.config.SuccessThreshold {
			return 0, ErrCircuitOpen
		}
		cb.probes++
	}
	return cb.generation, nil
}

func (cb *CircuitBreaker) record(generation uint64, failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if generation != cb.generation {
		return
	}
	if failed {
		cb.failures++
		cb.lastFailure = cb.now()
		if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
			cb.transition(StateOpen, "Circuit breaker opened")
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.transition(StateClosed, "Circuit breaker closed")
		}
	}
}

// transition moves to next and starts a new generation. Callers hold cb.mu.
func (cb *CircuitBreaker) transition(next State, msg string) {
	prev := cb.state
	cb.state = next
	cb.generation++
	cb.successes = 0
	cb.probes = 0
	if next == StateOpen {
		cb.openedAt = cb.now()
	}

	event := log.Info()
	if next == StateOpen {
		event = log.Warn()
	}
	event.
		Str("circuit_breaker", cb.config.Name).
		Str("from", prev.String()).
		Str("to", next.String()).
		Int("failure_count", cb.failures).
		Msg(msg)

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, prev, next)
	}
}

func (cb *CircuitBreaker) countsAsFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return cb.config.IsFailure == nil || cb.config.IsFailure(err)
}

// Name returns the configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// State returns the current state. An open breaker whose timeout has passed
// still reports open until the next call probes it.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently being rejected outright.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a point-in-time view of a breaker for health reporting.
type Stats struct {
	Name         string
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns the current counters.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state == StateClosed,
	}
}
