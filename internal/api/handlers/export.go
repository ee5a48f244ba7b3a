package handlers

import (
	"fmt"
	"net/http"
	"time"

	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles the full-state export endpoint
type ExportHandler struct {
	service service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(service service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export returns the complete persisted state as one JSON document
// @Summary Export all data
// @Description Bundle the organization settings, departments, SPOCs and groups into one downloadable JSON document
// @Tags export
// @Accept json
// @Produce json
// @Success 200 {object} service.ExportResponse "Full state export"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	export, err := h.service.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("volunteer-hub-export-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, export)
}
