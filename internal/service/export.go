package service

import (
	"fmt"
	"time"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/repository"
)

// ExportService bundles every persisted collection into one JSON document
// for offline backup or migration.
type ExportService struct {
	groupRepo      repository.GroupRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	spocRepo       repository.SPOCRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(groupRepo repository.GroupRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, spocRepo repository.SPOCRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface) *ExportService {
	return &ExportService{
		groupRepo:      groupRepo,
		departmentRepo: departmentRepo,
		spocRepo:       spocRepo,
		orgRepo:        orgRepo,
	}
}

// ExportResponse is the complete state of the system at export time
type ExportResponse struct {
	Organization models.Organization `json:"organization"`
	Departments  []models.Department `json:"departments"`
	SPOCs        []models.SPOC       `json:"spocs"`
	Groups       []models.Group      `json:"groups"`
	ExportedAt   time.Time           `json:"exported_at"`
}

// Export reads every collection and assembles the export document
func (s *ExportService) Export() (*ExportResponse, error) {
	org, err := s.orgRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read organization: %w", err)
	}
	departments, err := s.departmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}
	spocs, err := s.spocRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read SPOCs: %w", err)
	}
	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}

	return &ExportResponse{
		Organization: *org,
		Departments:  departments,
		SPOCs:        spocs,
		Groups:       groups,
		ExportedAt:   time.Now(),
	}, nil
}
