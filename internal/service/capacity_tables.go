package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/container-order-service/internal/capacity"
	"github.com/guttosm/container-order-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrRepositoryNotConfigured is returned when MongoDB is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CapacityTablesService resolves which capacity table the process runs with.
type CapacityTablesService interface {
	// Resolve returns the active stored table. When none is stored, fallback is
	// stored under version and source and returned.
	Resolve(ctx context.Context, fallback *capacity.Table, version, source string) (*capacity.Table, string, error)
	// History lists stored tables, newest first.
	History(ctx context.Context, limit int) ([]repository.CapacityTableDocument, error)
}

// CapacityTablesServiceImpl implements CapacityTablesService.
type CapacityTablesServiceImpl struct {
	repo repository.CapacityTablesRepositoryInterface
}

// NewCapacityTablesService creates a capacity tables service. A nil repository
// makes Resolve return the fallback table.
func NewCapacityTablesService(repo repository.CapacityTablesRepositoryInterface) CapacityTablesService {
	return &CapacityTablesServiceImpl{repo: repo}
}

// Resolve returns the table the process should use and its version.
func (s *CapacityTablesServiceImpl) Resolve(ctx context.Context, fallback *capacity.Table, version, source string) (*capacity.Table, string, error) {
	if s.repo == nil {
		return fallback, version, nil
	}

	doc, err := s.repo.GetActive(ctx)
	if err != nil {
		log.Warn().Err(err).Str("version", version).Msg("Failed to read stored capacity table, using configured one")
		return fallback, version, nil
	}

	if doc == nil {
		if _, err := s.repo.Create(ctx, version, fallback.Classes(), source); err != nil {
			log.Warn().Err(err).Msg("Failed to store capacity table")
		} else {
			log.Info().Str("version", version).Str("source", source).Msg("Capacity table stored")
		}
		return fallback, version, nil
	}

	table, err := capacity.NewTable(doc.Classes)
	if err != nil {
		return nil, "", fmt.Errorf("stored capacity table %s: %w", doc.Version, err)
	}
	return table, doc.Version, nil
}

// History lists stored capacity tables.
func (s *CapacityTablesServiceImpl) History(ctx context.Context, limit int) ([]repository.CapacityTableDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
