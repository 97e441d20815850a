package handlers

import (
	"net/http"

	"sapdoc/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot. GET /health.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	status := "ok"
	if !health.Healthy() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "sapdoc-scheduling",
		"health":  health,
	})
}
