// Package middleware provides HTTP middleware components for the container order service.
package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/guttosm/container-order-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the default TTL for cached idempotency responses.
	IdempotencyKeyTTL = 24 * time.Hour
	// IdempotencyCacheSize is the default number of cached responses.
	IdempotencyCacheSize = 10000
)

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return NewIdempotencyConfig(IdempotencyKeyTTL)
}

// NewIdempotencyConfig returns an enabled configuration that replays responses for ttl.
func NewIdempotencyConfig(ttl time.Duration) IdempotencyConfig {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyCacheSize, ttl),
		TTL:     ttl,
		Enabled: true,
	}
}

// Idempotency returns a middleware that handles idempotency using the Idempotency-Key header.
// A repeated POST, PUT, PATCH or DELETE with the same key, path and body gets the
// first successful response back without running the handler again. A repeat that
// arrives while the first request is still running is answered with 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, err := generateCacheKey(key, c.Request)
		if err != nil {
			errorResp := dto.NewError(dto.ErrCodeInvalidRequest,
				i18n.Message(c, i18n.ErrKeyInvalidRequestBody)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResp)
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		if !cfg.Cache.Begin(cacheKey) {
			errorResp := dto.NewError(dto.ErrCodeConflict,
				i18n.Message(c, i18n.ErrKeyIdempotencyInProgress)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusConflict, errorResp)
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		var stored *cachedResponse
		defer func() { cfg.Cache.Finish(cacheKey, stored) }()

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			stored = &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        append([]byte(nil), writer.body.Bytes()...),
			}
		}
	}
}

// generateCacheKey hashes the idempotency key with the method, path and body.
// The body is restored for the handler.
func generateCacheKey(idempotencyKey string, req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write([]byte{0})
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// responseWriter captures the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
