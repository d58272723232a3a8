// Package repository provides MongoDB persistence for capacity tables,
// destinations, submitted orders and logs.
package repository

import (
	"context"

	"github.com/guttosm/container-order-service/internal/domain/model"
)

// CapacityTablesRepositoryInterface defines the interface for capacity table repository operations.
type CapacityTablesRepositoryInterface interface {
	GetActive(ctx context.Context) (*CapacityTableDocument, error)
	Create(ctx context.Context, version string, classes []model.CapacityClass, source string) (*CapacityTableDocument, error)
	List(ctx context.Context, limit int) ([]CapacityTableDocument, error)
}

// DestinationsRepositoryInterface defines the interface for destination repository operations.
type DestinationsRepositoryInterface interface {
	Supports(ctx context.Context, destinationID string, mode model.TransportMode, size string, refrigerated bool) (bool, error)
	Upsert(ctx context.Context, doc DestinationDocument) error
	List(ctx context.Context) ([]DestinationDocument, error)
}

// OrdersRepositoryInterface defines the interface for submitted order operations.
type OrdersRepositoryInterface interface {
	Insert(ctx context.Context, sessionID string, payload model.SubmissionPayload) (model.SubmissionReceipt, error)
	Get(ctx context.Context, id string) (*OrderDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
