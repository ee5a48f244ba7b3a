package handlers

import (
	"errors"
	"net/http"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepartmentHandler handles HTTP requests for department administration
type DepartmentHandler struct {
	service     service.DepartmentServiceInterface
	spocService service.SPOCServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface, spocService service.SPOCServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{
		service:     service,
		spocService: spocService,
	}
}

// CreateDepartment creates a new department
// @Summary Create a department
// @Description Create a new department; names are unique
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department details"
// @Success 201 {object} service.DepartmentResponse "Department created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Department already exists"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.service.Create(&req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartments returns all departments
// @Summary List departments
// @Description Get every department
// @Tags departments
// @Accept json
// @Produce json
// @Success 200 {object} service.DepartmentListResponse "List of departments"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /departments [get]
func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	departments, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartment returns a department by ID
// @Summary Get department by ID
// @Description Get a department by its identifier
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse "Department details"
// @Failure 400 {object} ErrorResponse "Invalid department ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := h.departmentID(c)
	if !ok {
		return
	}

	department, err := h.service.GetByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// GetDepartmentSPOCs returns the SPOCs scoped to a department
// @Summary List department SPOCs
// @Description Get every SPOC belonging to a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.SPOCListResponse "List of SPOCs"
// @Failure 400 {object} ErrorResponse "Invalid department ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /departments/{id}/spocs [get]
func (h *DepartmentHandler) GetDepartmentSPOCs(c *gin.Context) {
	id, ok := h.departmentID(c)
	if !ok {
		return
	}

	spocs, err := h.spocService.GetByDepartment(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, spocs)
}

// UpdateDepartment updates a department
// @Summary Update a department
// @Description Update a department's details
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department details"
// @Success 200 {object} service.DepartmentResponse "Updated department"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "Department name already taken"
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := h.departmentID(c)
	if !ok {
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.service.Update(id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Description Remove a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Department deleted"
// @Failure 400 {object} ErrorResponse "Invalid department ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "Department still has SPOCs"
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := h.departmentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DepartmentHandler) departmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *DepartmentHandler) renderError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDepartmentExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "field": "name"})
	case errors.Is(err, apperrors.ErrDepartmentHasSPOCs):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
