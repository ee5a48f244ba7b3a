package service

import (
	"errors"
	"fmt"
	"time"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultDepartmentColor = "#3B82F6"

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=200"`
	Color       string `json:"color"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=200"`
	Color       string `json:"color"`
	Active      *bool  `json:"active"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	SPOCIDs     []uuid.UUID `json:"spoc_ids"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

// Create creates a new department. Names are unique case-insensitively.
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, fmt.Errorf("failed to check existing department: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDepartmentExists
	}

	color := req.Color
	if color == "" {
		color = defaultDepartmentColor
	}

	department := &models.Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		SPOCIDs:     []uuid.UUID{},
		Active:      true,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return s.toResponse(department), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(department), nil
}

// GetAll retrieves all departments
func (s *DepartmentService) GetAll() (*DepartmentListResponse, error) {
	departments, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *s.toResponse(&departments[i])
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       len(responses),
	}, nil
}

// Update updates a department
func (s *DepartmentService) Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, fmt.Errorf("failed to check existing department: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrDepartmentExists
	}

	department.Name = req.Name
	department.Description = req.Description
	if req.Color != "" {
		department.Color = req.Color
	}
	if req.Active != nil {
		department.Active = *req.Active
	}

	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.toResponse(department), nil
}

// Delete deletes a department. A department that still has SPOCs cannot be
// removed: the SPOCs must be reassigned or deleted first, so none is left
// pointing at a missing department.
func (s *DepartmentService) Delete(id uuid.UUID) error {
	department, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if len(department.SPOCIDs) > 0 {
		return apperrors.ErrDepartmentHasSPOCs
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) toResponse(department *models.Department) *DepartmentResponse {
	spocIDs := department.SPOCIDs
	if spocIDs == nil {
		spocIDs = []uuid.UUID{}
	}
	return &DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		Color:       department.Color,
		SPOCIDs:     spocIDs,
		Active:      department.Active,
		CreatedAt:   department.CreatedAt,
	}
}
