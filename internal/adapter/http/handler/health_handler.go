package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/usecase"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	predictionUC usecase.PredictionUsecase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(predictionUC usecase.PredictionUsecase) *HealthHandler {
	return &HealthHandler{predictionUC: predictionUC}
}

// Health handles GET /health. It always answers 200; model_loaded
// reports whether the model loaded at startup.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionUC.Health())
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.predictionUC.Ready(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
