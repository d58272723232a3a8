package repository

import (
	"context"
	"errors"

	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/domain/model"
)

// CapacityTablesRepositoryWithCircuitBreaker wraps CapacityTablesRepository with circuit breaker protection.
type CapacityTablesRepositoryWithCircuitBreaker struct {
	repo           *CapacityTablesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCapacityTablesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCapacityTablesRepositoryWithCircuitBreaker(repo *CapacityTablesRepository, cb *circuitbreaker.CircuitBreaker) *CapacityTablesRepositoryWithCircuitBreaker {
	return &CapacityTablesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active capacity table with circuit breaker protection.
// An open circuit yields no table so the caller falls back to the configured one.
func (r *CapacityTablesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CapacityTableDocument, error) {
	var result *CapacityTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new active capacity table with circuit breaker protection.
func (r *CapacityTablesRepositoryWithCircuitBreaker) Create(ctx context.Context, version string, classes []model.CapacityClass, source string) (*CapacityTableDocument, error) {
	var result *CapacityTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, version, classes, source)
		return cbErr
	})
	return result, err
}

// List returns stored capacity tables with circuit breaker protection.
func (r *CapacityTablesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CapacityTableDocument, error) {
	var result []CapacityTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CapacityTablesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// DestinationsRepositoryWithCircuitBreaker wraps DestinationsRepository with circuit breaker protection.
type DestinationsRepositoryWithCircuitBreaker struct {
	repo           *DestinationsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDestinationsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewDestinationsRepositoryWithCircuitBreaker(repo *DestinationsRepository, cb *circuitbreaker.CircuitBreaker) *DestinationsRepositoryWithCircuitBreaker {
	return &DestinationsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Supports checks a destination route with circuit breaker protection.
func (r *DestinationsRepositoryWithCircuitBreaker) Supports(ctx context.Context, destinationID string, mode model.TransportMode, size string, refrigerated bool) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Supports(ctx, destinationID, mode, size, refrigerated)
		return cbErr
	})
	return result, err
}

// Upsert stores a destination with circuit breaker protection.
func (r *DestinationsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, doc DestinationDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, doc)
	})
}

// List returns active destinations with circuit breaker protection.
func (r *DestinationsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]DestinationDocument, error) {
	var result []DestinationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DestinationsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit breaker protection.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a submitted order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Insert(ctx context.Context, sessionID string, payload model.SubmissionPayload) (model.SubmissionReceipt, error) {
	var result model.SubmissionReceipt
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Insert(ctx, sessionID, payload)
		return cbErr
	})
	return result, err
}

// Get returns a submitted order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*OrderDocument, error) {
	var result *OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
