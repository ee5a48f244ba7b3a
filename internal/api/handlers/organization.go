package handlers

import (
	"net/http"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for the organization settings
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetOrganization returns the organization settings
// @Summary Get organization settings
// @Description Get the singleton organization settings record; defaults are returned before first save
// @Tags organization
// @Accept json
// @Produce json
// @Success 200 {object} models.Organization "Organization settings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organization [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.service.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization updates the organization settings
// @Summary Update organization settings
// @Description Overwrite the singleton organization settings record
// @Tags organization
// @Accept json
// @Produce json
// @Param organization body service.UpdateOrganizationRequest true "Organization settings"
// @Success 200 {object} models.Organization "Updated settings"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /organization [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.service.Update(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}
