package handlers

import (
	"errors"
	"net/http"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SPOCHandler handles HTTP requests for SPOC administration
type SPOCHandler struct {
	service service.SPOCServiceInterface
}

// NewSPOCHandler creates a new SPOC handler
func NewSPOCHandler(service service.SPOCServiceInterface) *SPOCHandler {
	return &SPOCHandler{service: service}
}

// CreateSPOC creates a new SPOC
// @Summary Create a SPOC
// @Description Create a new single point of contact scoped to a department
// @Tags spocs
// @Accept json
// @Produce json
// @Param spoc body service.CreateSPOCRequest true "SPOC details"
// @Success 201 {object} service.SPOCResponse "SPOC created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "SPOC email already registered"
// @Router /spocs [post]
func (h *SPOCHandler) CreateSPOC(c *gin.Context) {
	var req service.CreateSPOCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spoc, err := h.service.Create(&req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, spoc)
}

// GetSPOCs returns all SPOCs
// @Summary List SPOCs
// @Description Get every SPOC
// @Tags spocs
// @Accept json
// @Produce json
// @Success 200 {object} service.SPOCListResponse "List of SPOCs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /spocs [get]
func (h *SPOCHandler) GetSPOCs(c *gin.Context) {
	spocs, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spocs)
}

// GetSPOC returns a SPOC by ID
// @Summary Get SPOC by ID
// @Description Get a SPOC by its identifier
// @Tags spocs
// @Accept json
// @Produce json
// @Param id path string true "SPOC ID (UUID)"
// @Success 200 {object} service.SPOCResponse "SPOC details"
// @Failure 400 {object} ErrorResponse "Invalid SPOC ID"
// @Failure 404 {object} ErrorResponse "SPOC not found"
// @Router /spocs/{id} [get]
func (h *SPOCHandler) GetSPOC(c *gin.Context) {
	id, ok := h.spocID(c)
	if !ok {
		return
	}

	spoc, err := h.service.GetByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, spoc)
}

// UpdateSPOC updates a SPOC's contact details
// @Summary Update a SPOC
// @Description Update a SPOC's contact details
// @Tags spocs
// @Accept json
// @Produce json
// @Param id path string true "SPOC ID (UUID)"
// @Param spoc body service.UpdateSPOCRequest true "SPOC details"
// @Success 200 {object} service.SPOCResponse "Updated SPOC"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "SPOC not found"
// @Failure 409 {object} ErrorResponse "SPOC email already registered"
// @Router /spocs/{id} [put]
func (h *SPOCHandler) UpdateSPOC(c *gin.Context) {
	id, ok := h.spocID(c)
	if !ok {
		return
	}

	var req service.UpdateSPOCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spoc, err := h.service.Update(id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, spoc)
}

// DeleteSPOC removes a SPOC
// @Summary Delete a SPOC
// @Description Remove a SPOC and its department reference
// @Tags spocs
// @Accept json
// @Produce json
// @Param id path string true "SPOC ID (UUID)"
// @Success 204 "SPOC deleted"
// @Failure 400 {object} ErrorResponse "Invalid SPOC ID"
// @Failure 404 {object} ErrorResponse "SPOC not found"
// @Router /spocs/{id} [delete]
func (h *SPOCHandler) DeleteSPOC(c *gin.Context) {
	id, ok := h.spocID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SPOCHandler) spocID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPOC ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *SPOCHandler) renderError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSPOCExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "field": "email"})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
