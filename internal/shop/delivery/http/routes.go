package http

import (
	"ugc-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/shops/connect", h.Connect)
		api.GET("/shops", h.ListConnections)
		api.GET("/shops/:shop_domain/products", h.ListProducts)
	}
}
