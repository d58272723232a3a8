// Package app provides service initialization.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/capacity"
	"github.com/guttosm/container-order-service/internal/catalog"
	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/service"
	"github.com/rs/zerolog/log"
)

// builtinCapacityVersion labels the compiled-in capacity table.
const builtinCapacityVersion = "builtin"

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	CapacityTable   *capacity.Table
	CapacityVersion string
	Catalog         *catalog.Client
	Sessions        *service.SessionStore
	Orders          service.OrderService
}

// Close stops the background janitors of the session store and catalog cache.
func (s *ServiceComponents) Close() {
	if s == nil {
		return
	}
	s.Sessions.Stop()
	s.Catalog.Close()
}

// InitializeServices initializes business logic services. db may be nil, in which
// case orders cannot be submitted and every destination route is accepted.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	table, version, source, err := loadCapacityTable(cfg.Engine)
	if err != nil {
		return nil, err
	}

	var opts []service.OrderServiceOption
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		table, version, err = db.CapacityTables.Resolve(ctx, table, version, source)
		cancel()
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			service.WithOrderSubmitter(db.Orders),
			service.WithDestinationCatalog(db.Destinations),
		)
	}
	log.Info().Str("version", version).Int("classes", table.Len()).Msg("Capacity table loaded")

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL),
		catalog.WithCircuitBreaker(catalog.NewCircuitBreaker(catalogBreakerConfig(cfg.Database))),
	)

	sessions := service.NewSessionStore(cfg.Session.Capacity, cfg.Session.TTL)
	opts = append(opts,
		service.WithSessionStore(sessions),
		service.WithEngineOptions(
			service.WithPackingEfficiency(cfg.Engine.PackingEfficiency),
			service.WithWarningThreshold(cfg.Engine.WarningThreshold),
		),
	)

	return &ServiceComponents{
		CapacityTable:   table,
		CapacityVersion: version,
		Catalog:         catalogClient,
		Sessions:        sessions,
		Orders:          service.NewOrderService(table, catalogClient, opts...),
	}, nil
}

// loadCapacityTable reads the configured capacity table file, or returns the
// built-in table when none is configured.
func loadCapacityTable(cfg config.EngineConfig) (table *capacity.Table, version, source string, err error) {
	if cfg.CapacityTableFile == "" {
		return capacity.Default(), builtinCapacityVersion, builtinCapacityVersion, nil
	}

	table, version, err = capacity.LoadFile(cfg.CapacityTableFile)
	if err != nil {
		return nil, "", "", fmt.Errorf("loading capacity table: %w", err)
	}
	if version == "" {
		version = cfg.CapacityTableFile
	}
	return table, version, cfg.CapacityTableFile, nil
}

// catalogBreakerConfig shares the database breaker thresholds with the catalog
// client, falling back to the defaults for unset values.
func catalogBreakerConfig(cfg config.DatabaseConfig) circuitbreaker.Config {
	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = "catalog"
	cbCfg.OnStateChange = recordBreakerState
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	return cbCfg
}
