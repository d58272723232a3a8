package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/service"
)

// SessionIDKey is the context key under which handlers store the order session ID.
const SessionIDKey ContextKey = "session_id"

// SetSessionID records the order session handled by the request.
func SetSessionID(c *gin.Context, sessionID string) {
	if sessionID != "" {
		c.Set(string(SessionIDKey), sessionID)
	}
}

// GetSessionID returns the order session recorded for the request, if any.
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(string(SessionIDKey)); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// AuditLog records an order action for the session of the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	enqueue(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed order action for the session of the request.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueue(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		SessionID:  GetSessionID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
