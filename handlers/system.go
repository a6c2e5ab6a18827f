package handlers

import (
	"net/http"

	"eventhub/config"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest backend snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "message": "Hi, I'm EventHub", "services": status})
}

// PublicConfigHandler handles GET /api/config/public.
func PublicConfigHandler(c *gin.Context) {
	utils.JSONSuccess(c, gin.H{
		"googleClientId": config.AppConfig.GoogleClientID,
		"apiUrl":         config.AppConfig.BaseURL,
	})
}
