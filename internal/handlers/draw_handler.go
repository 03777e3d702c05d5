package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lottolabs/lottologic-backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// DrawHandler handles draw history HTTP requests
type DrawHandler struct {
	historyService  services.HistoryService
	analysisService services.AnalysisService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(historyService services.HistoryService, analysisService services.AnalysisService) *DrawHandler {
	return &DrawHandler{
		historyService:  historyService,
		analysisService: analysisService,
	}
}

// GetRecentDraws handles GET /draws
func (h *DrawHandler) GetRecentDraws(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	draws, err := h.historyService.RecentDraws(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draws: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": draws})
}

// GetDrawByRound handles GET /draws/:round
func (h *DrawHandler) GetDrawByRound(c *gin.Context) {
	round, err := strconv.Atoi(c.Param("round"))
	if err != nil || round <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round"})
		return
	}

	draw, err := h.historyService.DrawByRound(c.Request.Context(), round)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draw: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": draw})
}

// RefreshDraws handles POST /draws/refresh
func (h *DrawHandler) RefreshDraws(c *gin.Context) {
	stored, err := h.historyService.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh draws: " + err.Error()})
		return
	}

	if err := h.analysisService.Recalibrate(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refreshed draws but recalibration failed: " + err.Error(), "new_draws": stored})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draw history refreshed", "new_draws": stored})
}
