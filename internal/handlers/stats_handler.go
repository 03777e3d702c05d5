package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lottolabs/lottologic-backend/internal/models"
	"github.com/lottolabs/lottologic-backend/internal/services"
)

// StatsHandler handles statistics and weight HTTP requests
type StatsHandler struct {
	analysisService services.AnalysisService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(analysisService services.AnalysisService) *StatsHandler {
	return &StatsHandler{
		analysisService: analysisService,
	}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	response := &models.StatsResponse{
		Weights: h.analysisService.Weights(),
		History: h.analysisService.Stats(),
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// UpdateWeights handles PUT /weights
type UpdateWeightsRequest struct {
	Weights map[string]float64 `json:"weights" binding:"required"`
}

func (h *StatsHandler) UpdateWeights(c *gin.Context) {
	var request UpdateWeightsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.analysisService.OverrideWeights(request.Weights); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Weights updated successfully",
		"weights": h.analysisService.Weights(),
	})
}
