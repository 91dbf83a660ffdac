package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool

	// Permissive echoes any origin back. Never enabled in production.
	Permissive bool
}

// DefaultCORSConfig is strict in production and permissive everywhere else.
func DefaultCORSConfig(environment string) CORSConfig {
	return CORSConfig{
		AllowCredentials: true,
		Permissive:       environment != "production",
	}
}

// CORS handles cross-origin headers and preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.ToLower(origin)] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := allowed[strings.ToLower(origin)]
			if ok || cfg.Permissive {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if cfg.AllowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, lang")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
