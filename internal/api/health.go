package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrimind/backend/internal/types"
)

// Version is the API version reported by the health endpoint
const Version = "1.0.0"

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	provider string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Check)
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthCheckResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now(),
		Services: map[string]string{
			"ai_provider": h.provider,
		},
	})
}
