// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/metrics"
	"github.com/guttosm/container-order-service/internal/repository"
	"github.com/guttosm/container-order-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	LoggingService service.LoggingService
	CapacityTables service.CapacityTablesService
	Orders         service.OrderSubmitter
	Destinations   service.DestinationCatalog
	// CircuitBreakers maps a readiness check name to the breaker guarding a collection.
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	capacityCB := newCircuitBreaker(cfg, "mongodb-capacity-tables")
	destinationsCB := newCircuitBreaker(cfg, "mongodb-destinations")
	ordersCB := newCircuitBreaker(cfg, "mongodb-orders")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	capacityRepo := repository.NewCapacityTablesRepositoryWithCircuitBreaker(repository.NewCapacityTablesRepository(db), capacityCB)

	return &DatabaseComponents{
		DB:             db,
		LoggingService: service.NewLoggingService(logsRepo),
		CapacityTables: service.NewCapacityTablesService(capacityRepo),
		Orders:         repository.NewOrdersRepositoryWithCircuitBreaker(repository.NewOrdersRepository(db), ordersCB),
		Destinations:   repository.NewDestinationsRepositoryWithCircuitBreaker(repository.NewDestinationsRepository(db), destinationsCB),
		CircuitBreakers: map[string]*circuitbreaker.CircuitBreaker{
			"mongodb_capacity_tables": capacityCB,
			"mongodb_destinations":    destinationsCB,
			"mongodb_orders":          ordersCB,
			"mongodb_logs":            logsCB,
		},
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    recordBreakerState,
	})
}

// recordBreakerState exports breaker transitions to Prometheus.
func recordBreakerState(name string, from, to circuitbreaker.State) {
	metrics.RecordCircuitBreakerState(name, int(from), int(to), to.String())
}
