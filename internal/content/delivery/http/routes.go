package http

import (
	"ugc-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/content/ingest", h.Ingest)
		api.POST("/content/discover", h.Discover)
		api.GET("/content", h.ListContent)
		api.GET("/content/:content_id", h.GetContent)
		api.POST("/content/:content_id/engagement/refresh", h.RefreshEngagement)
	}
}
