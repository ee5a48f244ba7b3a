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

// SPOCService handles business logic for single points of contact. It also
// maintains the department-side SPOC ID references.
type SPOCService struct {
	repo           repository.SPOCRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	validator      *validator.Validate
}

// NewSPOCService creates a new SPOC service
func NewSPOCService(repo repository.SPOCRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *SPOCService {
	return &SPOCService{
		repo:           repo,
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

// CreateSPOCRequest represents the request to create a SPOC
type CreateSPOCRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=200"`
	Email        string    `json:"email" validate:"required,email,max=255"`
	Phone        string    `json:"phone" validate:"max=20"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
}

// UpdateSPOCRequest represents the request to update a SPOC
type UpdateSPOCRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"max=20"`
}

// SPOCResponse represents the response for SPOC operations
type SPOCResponse struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	DepartmentID     uuid.UUID   `json:"department_id"`
	AssignedGroupIDs []uuid.UUID `json:"assigned_group_ids"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SPOCListResponse represents a list of SPOCs
type SPOCListResponse struct {
	SPOCs []SPOCResponse `json:"spocs"`
	Total int            `json:"total"`
}

// Create creates a new SPOC scoped to an existing department and records
// the SPOC's ID on the department side.
func (s *SPOCService) Create(req *CreateSPOCRequest) (*SPOCResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.departmentRepo.GetByID(req.DepartmentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrSPOCNotFound) {
		return nil, fmt.Errorf("failed to check existing SPOC: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSPOCExists
	}

	spoc := &models.SPOC{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		DepartmentID:     department.ID,
		AssignedGroupIDs: []uuid.UUID{},
		CreatedAt:        time.Now(),
	}

	if err := s.repo.Create(spoc); err != nil {
		return nil, fmt.Errorf("failed to create SPOC: %w", err)
	}

	department.SPOCIDs = append(department.SPOCIDs, spoc.ID)
	if err := s.departmentRepo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.toResponse(spoc), nil
}

// GetByID retrieves a SPOC by ID
func (s *SPOCService) GetByID(id uuid.UUID) (*SPOCResponse, error) {
	spoc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(spoc), nil
}

// GetAll retrieves all SPOCs
func (s *SPOCService) GetAll() (*SPOCListResponse, error) {
	spocs, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get SPOCs: %w", err)
	}
	return s.toListResponse(spocs), nil
}

// GetByDepartment retrieves all SPOCs scoped to one department
func (s *SPOCService) GetByDepartment(departmentID uuid.UUID) (*SPOCListResponse, error) {
	if _, err := s.departmentRepo.GetByID(departmentID); err != nil {
		return nil, err
	}

	spocs, err := s.repo.GetByDepartmentID(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get SPOCs: %w", err)
	}
	return s.toListResponse(spocs), nil
}

// Update updates a SPOC's contact details
func (s *SPOCService) Update(id uuid.UUID, req *UpdateSPOCRequest) (*SPOCResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	spoc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrSPOCNotFound) {
		return nil, fmt.Errorf("failed to check existing SPOC: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrSPOCExists
	}

	spoc.Name = req.Name
	spoc.Email = req.Email
	spoc.Phone = req.Phone

	if err := s.repo.Update(spoc); err != nil {
		return nil, fmt.Errorf("failed to update SPOC: %w", err)
	}

	return s.toResponse(spoc), nil
}

// Delete removes a SPOC and its ID from the owning department
func (s *SPOCService) Delete(id uuid.UUID) error {
	spoc, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete SPOC: %w", err)
	}

	department, err := s.departmentRepo.GetByID(spoc.DepartmentID)
	if err != nil {
		// The department may already be gone; the weak reference dies with it.
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	for i, spocID := range department.SPOCIDs {
		if spocID == id {
			department.SPOCIDs = append(department.SPOCIDs[:i], department.SPOCIDs[i+1:]...)
			break
		}
	}
	if err := s.departmentRepo.Update(department); err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	return nil
}

func (s *SPOCService) toResponse(spoc *models.SPOC) *SPOCResponse {
	groupIDs := spoc.AssignedGroupIDs
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	return &SPOCResponse{
		ID:               spoc.ID,
		Name:             spoc.Name,
		Email:            spoc.Email,
		Phone:            spoc.Phone,
		DepartmentID:     spoc.DepartmentID,
		AssignedGroupIDs: groupIDs,
		CreatedAt:        spoc.CreatedAt,
	}
}

func (s *SPOCService) toListResponse(spocs []models.SPOC) *SPOCListResponse {
	responses := make([]SPOCResponse, len(spocs))
	for i := range spocs {
		responses[i] = *s.toResponse(&spocs[i])
	}
	return &SPOCListResponse{
		SPOCs: responses,
		Total: len(responses),
	}
}
