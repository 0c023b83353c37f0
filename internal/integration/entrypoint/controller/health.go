package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storageName string
	ping        func(ctx context.Context) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Backend   string `json:"backend"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. ping
// checks the session storage backend named storageName.
func NewHealthController(storageName string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{
		storageName: storageName,
		ping:        ping,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storageStatus := "disconnected"
	if h.ping != nil && h.ping(ctx) == nil {
		storageStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Storage:   storageStatus,
		Backend:   h.storageName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
