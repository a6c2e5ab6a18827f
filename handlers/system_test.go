package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"eventhub/config"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	utils.CheckHealth(context.Background(), nil, nil)
	r := gin.New()
	r.GET("/health", HealthHandler)

	w, _ := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string             `json:"status"`
		Services utils.HealthStatus `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Services.Mongo)
}

func TestPublicConfigHandler(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.GoogleClientID = "client-123"
	config.AppConfig.BaseURL = "https://api.example.com"

	r := gin.New()
	r.GET("/api/config/public", PublicConfigHandler)

	w, env := doRequest(r, http.MethodGet, "/api/config/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"googleClientId":"client-123","apiUrl":"https://api.example.com"}`, string(env.Data))
}
