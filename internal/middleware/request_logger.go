package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/logger"
	"github.com/guttosm/container-order-service/internal/service"
	"github.com/rs/zerolog"
)

const (
	requestLogMessage = "HTTP request"
	fallbackLogWrite  = 5 * time.Second
)

// RequestLogger writes one structured line per request and, when
// loggingService is set, persists the same entry to the log store.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := statusLevel(status)
		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      level.String(),
			Message:    requestLogMessage,
			RequestID:  GetRequestID(c),
			SessionID:  GetSessionID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		l := logger.Logger()
		l.WithLevel(level).
			Str("request_id", entry.RequestID).
			Str("session_id", entry.SessionID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Msg(requestLogMessage)

		if loggingService != nil {
			enqueue(loggingService, entry)
		}
	}
}

// enqueue hands entry to the async logger. Without one running the entry is
// written from its own goroutine.
func enqueue(loggingService service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fallbackLogWrite)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
