package http

import (
	"ugc-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/inbox", h.Promote)
		api.GET("/inbox", h.ListInbox)
		api.GET("/inbox/:inbox_id", h.GetInboxItem)
		api.PATCH("/inbox/:inbox_id/status", h.UpdateStatus)
		api.GET("/content/:content_id/inbox", h.ListInboxByContent)
	}
}
