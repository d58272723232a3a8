// Package config provides configuration management for the container order service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Engine   EngineConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port      string
	RateLimit int
	// SessionRateLimit caps requests per order session and window. Zero disables it.
	SessionRateLimit  int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// SessionConfig bounds the in-memory order sessions.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// EngineConfig holds fill engine settings.
type EngineConfig struct {
	// PackingEfficiency derates box volume; values outside (0, 1] mean 1.0.
	PackingEfficiency float64
	// WarningThreshold is the fill ratio from which a container is near full.
	WarningThreshold float64
	// CapacityTableFile is a YAML capacity table. Empty uses the built-in table.
	CapacityTableFile string
}

// CatalogConfig holds the product catalog client configuration.
type CatalogConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration, shared by the catalog client
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			SessionRateLimit:  getEnvInt("SESSION_RATE_LIMIT", 60),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			EnableIdempotency: getEnvBool("ENABLE_IDEMPOTENCY", true),
			IdempotencyTTL:    getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Session: SessionConfig{
			Capacity: getEnvInt("SESSION_CAPACITY", 10000),
			TTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		},
		Engine: EngineConfig{
			PackingEfficiency: getEnvFloat("PACKING_EFFICIENCY", 1.0),
			WarningThreshold:  getEnvFloat("FILL_WARNING_THRESHOLD", 0.85),
			CapacityTableFile: getEnv("CAPACITY_TABLE_FILE", ""),
		},
		Catalog: CatalogConfig{
			BaseURL:   strings.TrimRight(getEnv("CATALOG_BASE_URL", "http://localhost:9000/api"), "/"),
			Timeout:   getEnvDuration("CATALOG_TIMEOUT", 5*time.Second),
			CacheSize: getEnvInt("CATALOG_CACHE_SIZE", 1000),
			CacheTTL:  getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "container_orders"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
