//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	services, err := InitializeServices(config.Config{}, nil)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:         100,
					RateWindow:        time.Minute,
					SessionRateLimit:  30,
					RequestTimeout:    5 * time.Second,
					EnableIdempotency: true,
					IdempotencyTTL:    time.Hour,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.Nil(t, components.Config.LoggingService)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.Equal(t, 30, components.Config.SessionRateLimit)
				assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, time.Hour, components.Config.IdempotencyTTL)
			},
		},
		{
			name: "passes the logging service through",
			dbComponents: &DatabaseComponents{
				LoggingService: mocks.NewMockLoggingService(t),
				CircuitBreakers: map[string]*circuitbreaker.CircuitBreaker{
					"mongodb_orders": circuitbreaker.New(circuitbreaker.DefaultConfig()),
				},
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					CORSOrigins: []string{"https://shop.example.com"},
					SwaggerUser: "docs",
					SwaggerPass: "secret",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.LoggingService)
				assert.False(t, components.Config.EnableIdempotency)
				assert.Equal(t, []string{"https://shop.example.com"}, components.Config.CORSOrigins)
				assert.Equal(t, "docs", components.Config.SwaggerUser)
				assert.Equal(t, "secret", components.Config.SwaggerPass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(services, tt.dbComponents, tt.cfg)

			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
