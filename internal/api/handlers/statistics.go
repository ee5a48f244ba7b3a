package handlers

import (
	"net/http"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler handles HTTP requests for dashboard aggregates
type StatisticsHandler struct {
	service service.StatisticsServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(service service.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetStatistics returns aggregate counts across all groups
// @Summary Dashboard statistics
// @Description Get total groups, total volunteers (leaders included) and average group size
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} service.StatisticsResponse "Aggregates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
