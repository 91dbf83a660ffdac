package http

import (
	"ugc-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/content/:content_id/assets", h.Submit)
		api.GET("/content/:content_id/assets", h.ListJobsByContent)
		api.GET("/assets/:asset_id", h.GetJob)
	}
}
