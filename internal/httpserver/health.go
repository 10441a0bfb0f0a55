package httpserver

import (
	"github.com/gin-gonic/gin"

	configMongo "portal-srv/config/mongo"
	"portal-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Portal API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "portal-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. All backing stores must
// answer before the service reports ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "PostgreSQL connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := configMongo.HealthCheck(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "MongoDB connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Redis connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := srv.producer.HealthCheck(); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Kafka producer unavailable",
			"error":   err.Error(),
		})
		return
	}
	if !srv.rabbitConn.IsReady() {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "RabbitMQ connection not ready",
		})
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"postgres": "connected",
		"mongo":    "connected",
		"redis":    "connected",
		"kafka":    "connected",
		"rabbitmq": "connected",
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
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
