package http

import (
	"ugc-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/content/:content_id/rights/request", h.Request)
		api.POST("/content/:content_id/rights/resolve", h.Resolve)
		api.GET("/content/:content_id/rights", h.ListRequests)
	}
}
