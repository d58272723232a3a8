// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/http"
	"github.com/guttosm/container-order-service/internal/middleware"
)

// App is the wired application: the HTTP router and the components that own
// background goroutines or connections.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize business services
	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		middleware.StopAsyncLogger()
		dbComponents.Close()
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
	}, nil
}

// Close flushes pending audit entries and releases background resources.
func (a *App) Close() {
	middleware.StopAsyncLogger()
	a.services.Close()
	a.database.Close()
}
