package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/middleware"
)

// OrderRoutes handles order session route registration.
type OrderRoutes struct {
	handler *Handler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(handler *Handler) *OrderRoutes {
	return &OrderRoutes{handler: handler}
}

// RegisterRoutes registers the capacity table and order session routes.
// Session routes are rate limited per session when cfg.SessionRateLimit is set.
func (r *OrderRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/capacity-classes", r.handler.CapacityClasses)
	rg.POST("/orders", r.handler.CreateOrder)

	session := rg.Group("/orders/:id")
	if cfg.SessionRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.RateWindow)
		session.Use(limiter.SessionRateLimit())
	}

	session.GET("", r.handler.GetOrder)
	session.DELETE("", r.handler.AbandonOrder)
	session.PUT("/active", r.handler.SwitchActive)
	session.GET("/payload", r.handler.Payload)
	session.POST("/submit", r.handler.Submit)

	session.POST("/containers", r.handler.OpenContainer)
	session.DELETE("/containers/:slot", r.handler.DeleteContainer)
	session.PUT("/containers/:slot/class", r.handler.RetypeContainer)

	session.POST("/containers/:slot/items", r.handler.AddItem)
	session.PUT("/containers/:slot/items/:variantId", r.handler.AdjustItem)
	session.DELETE("/containers/:slot/items/:variantId", r.handler.RemoveItem)

	if r.handler.loggingService != nil {
		session.GET("/audit", r.handler.AuditTrail)
	}
}

// GetHandler returns the underlying order handler.
func (r *OrderRoutes) GetHandler() *Handler {
	return r.handler
}
