package service

import (
	"fmt"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OrganizationService handles the singleton organization settings record
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateOrganizationRequest represents the request to update the settings
type UpdateOrganizationRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Tagline        string `json:"tagline" validate:"max=200"`
	Theme          string `json:"theme" validate:"omitempty,oneof=light dark"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Logo           string `json:"logo" validate:"omitempty,url"`
}

// Get returns the organization settings
func (s *OrganizationService) Get() (*models.Organization, error) {
	return s.repo.Get()
}

// Update applies the full settings record. The record is singleton
// read-modify-write; unset optional fields keep their previous values.
func (s *OrganizationService) Update(req *UpdateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	org.Name = req.Name
	org.Tagline = req.Tagline
	if req.Theme != "" {
		org.Theme = req.Theme
	}
	if req.PrimaryColor != "" {
		org.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		org.SecondaryColor = req.SecondaryColor
	}
	org.Logo = req.Logo

	if err := s.repo.Save(org); err != nil {
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	return org, nil
}
