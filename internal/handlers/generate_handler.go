package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lottolabs/lottologic-backend/internal/services"
)

// GenerateHandler handles candidate generation HTTP requests
type GenerateHandler struct {
	generatorService services.GeneratorService
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(generatorService services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{
		generatorService: generatorService,
	}
}

// Generate handles GET /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	count := 0
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = parsed
	}

	sets, err := h.generatorService.Generate(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate candidate sets: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sets})
}
