package app

import (
	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/http"
	"github.com/guttosm/container-order-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(services.Orders, loggingService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if cb := services.Catalog.CircuitBreaker(); cb != nil {
		healthHandler.RegisterCircuitBreaker("catalog", cb)
	}
	if dbComponents != nil {
		for name, cb := range dbComponents.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
	}
	healthHandler.RegisterInfo("capacity_version", func() interface{} { return services.CapacityVersion })
	healthHandler.RegisterInfo("active_sessions", func() interface{} { return services.Sessions.Len() })
	healthHandler.RegisterInfo("submission_enabled", func() interface{} { return services.Orders.SubmissionEnabled() })

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		SessionRateLimit:  cfg.Server.SessionRateLimit,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		IdempotencyTTL:    cfg.Server.IdempotencyTTL,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
