package repository

import (
	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByCode(code string) (*models.Group, error)
	GetAll() ([]models.Group, error)
	Update(group *models.Group) error
	CodeExists(code string) (bool, error)
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByName(name string) (*models.Department, error)
	GetAll() ([]models.Department, error)
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// SPOCRepositoryInterface defines the interface for SPOC repository operations
type SPOCRepositoryInterface interface {
	Create(spoc *models.SPOC) error
	GetByID(id uuid.UUID) (*models.SPOC, error)
	GetByEmail(email string) (*models.SPOC, error)
	GetByDepartmentID(departmentID uuid.UUID) ([]models.SPOC, error)
	GetAll() ([]models.SPOC, error)
	Update(spoc *models.SPOC) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for the singleton
// organization record
type OrganizationRepositoryInterface interface {
	Get() (*models.Organization, error)
	Save(org *models.Organization) error
}
