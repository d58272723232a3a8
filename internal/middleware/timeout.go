package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/guttosm/container-order-service/internal/i18n"
	"github.com/guttosm/container-order-service/internal/logger"
)

// DefaultRequestTimeout bounds API requests when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Timeout returns a middleware that puts a deadline on the request context
// and answers 504 when the handler has not finished by then. Catalog lookups
// and order submissions observe the deadline through the context.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool
		done := make(chan struct{})
		var panicked any

		go func() {
			defer func() {
				// Re-raised on the request goroutine so Recovery sees it.
				panicked = recover()
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			if panicked != nil {
				panic(panicked)
			}
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}

			requestID := GetRequestID(c)
			log := logger.Logger()
			log.Warn().
				Str("request_id", requestID).
				Str("session_id", GetSessionID(c)).
				Str("method", c.Request.Method).
				Str("path", c.FullPath()).
				Dur("timeout", timeout).
				Msg("Request timed out")

			message := i18n.Message(c, i18n.ErrKeyTimeout)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(requestID))
		}
	}
}
