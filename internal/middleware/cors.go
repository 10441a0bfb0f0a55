package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the allowed origins and headers.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowLocalhost   bool
	AllowCredentials bool
}

// DefaultCORSConfig returns a strict config in production and a permissive
// one (localhost allowed on any port) everywhere else.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins:   []string{"https://portal.hcmut.edu.vn"},
			AllowCredentials: true,
		}
	}
	return CORSConfig{
		AllowLocalhost:   true,
		AllowCredentials: true,
	}
}

// CORS returns a middleware that answers preflight requests and sets the
// CORS response headers for allowed origins.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(cfg, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, lang")
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg CORSConfig, origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	if cfg.AllowLocalhost {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://")
		host := trimmed
		if i := strings.IndexByte(trimmed, ':'); i >= 0 {
			host = trimmed[:i]
		}
		if host == "localhost" || host == "127.0.0.1" {
			return true
		}
	}
	return false
}
