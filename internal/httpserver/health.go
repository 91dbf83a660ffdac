package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ugc-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "UGC Operations API"
	HealthVersion = "1.0.0"
	ServiceName   = "ugc-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. The service is ready only
// when Postgres, Redis and object storage all respond.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"database", srv.postgresDB.PingContext},
		{"redis", srv.redisClient.Ping},
		{"storage", srv.minioClient.HealthCheck},
	}

	backends := gin.H{}
	for _, check := range checks {
		if err := check.ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"service": ServiceName,
				"failed":  check.name,
				"error":   err.Error(),
			})
			return
		}
		backends[check.name] = "connected"
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"backends": backends,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
