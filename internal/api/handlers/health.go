package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Home describes the service and its endpoints
func Home(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": serviceName,
			"status":  "running",
			"version": version,
			"endpoints": gin.H{
				"health":   pathHealth,
				"generate": pathGenerate,
				"test":     pathTest,
				"families": pathFamilies,
				"metrics":  pathMetrics,
			},
		})
	}
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"message":   serviceName,
		"cors":      "enabled",
	})
}

// CORSTest lets the front end confirm cross-origin calls reach the API
func CORSTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "API test successful",
		"server_time": time.Now().Unix(),
		"method":      c.Request.Method,
		"cors":        "enabled",
	})
}
