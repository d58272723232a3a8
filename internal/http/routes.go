package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of API routes mounted under /api.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var _ RouteGroup = (*OrderRoutes)(nil)

// registerRouteGroups mounts groups on api in order, skipping nil entries.
func registerRouteGroups(api *gin.RouterGroup, cfg *RouterConfig, groups ...RouteGroup) {
	for _, g := range groups {
		if g != nil {
			g.RegisterRoutes(api, cfg)
		}
	}
}
