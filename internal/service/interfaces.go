package service

import (
	"context"

	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for the group lifecycle
type GroupServiceInterface interface {
	Create(req *CreateGroupRequest) (*GroupResponse, error)
	ResolveByCode(input string) (*GroupResponse, error)
	Join(req *JoinGroupRequest) (*GroupResponse, error)
	AssignTask(id uuid.UUID, req *AssignTaskRequest) (*GroupResponse, error)
	AssignSPOC(id uuid.UUID, spocID uuid.UUID) (*GroupResponse, error)
	GetByID(id uuid.UUID) (*GroupResponse, error)
	GetAll() (*GroupListResponse, error)
	JoinURL(code string) string
}

// VerificationServiceInterface defines the interface for the verification workflow
type VerificationServiceInterface interface {
	Start(req *StartVerificationRequest) (*VerificationResponse, error)
	RequestMobileOTP(ctx context.Context, id uuid.UUID) (*VerificationResponse, error)
	SubmitMobileOTP(id uuid.UUID, req *SubmitOTPRequest) (*VerificationResponse, error)
	RequestEmailOTP(ctx context.Context, id uuid.UUID) (*VerificationResponse, error)
	SubmitEmailOTP(id uuid.UUID, req *SubmitOTPRequest) (*VerificationResponse, error)
	SubmitGovernmentID(ctx context.Context, id uuid.UUID, req *SubmitGovernmentIDRequest) (*VerificationResponse, error)
	Get(id uuid.UUID) (*VerificationResponse, error)
	Result(id uuid.UUID) (*models.Volunteer, error)
	Consume(id uuid.UUID) error
	Cancel(id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department administration
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(id uuid.UUID) (*DepartmentResponse, error)
	GetAll() (*DepartmentListResponse, error)
	Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(id uuid.UUID) error
}

// SPOCServiceInterface defines the interface for SPOC administration
type SPOCServiceInterface interface {
	Create(req *CreateSPOCRequest) (*SPOCResponse, error)
	GetByID(id uuid.UUID) (*SPOCResponse, error)
	GetAll() (*SPOCListResponse, error)
	GetByDepartment(departmentID uuid.UUID) (*SPOCListResponse, error)
	Update(id uuid.UUID, req *UpdateSPOCRequest) (*SPOCResponse, error)
	Delete(id uuid.UUID) error
}

// OrganizationServiceInterface defines the interface for the settings record
type OrganizationServiceInterface interface {
	Get() (*models.Organization, error)
	Update(req *UpdateOrganizationRequest) (*models.Organization, error)
}

// ExportServiceInterface defines the interface for the full-state export
type ExportServiceInterface interface {
	Export() (*ExportResponse, error)
}

// QRServiceInterface defines the interface for QR rendering
type QRServiceInterface interface {
	Encode(joinURL string, size int) ([]byte, error)
}

// StatisticsServiceInterface defines the interface for dashboard aggregates
type StatisticsServiceInterface interface {
	Overview() (*StatisticsResponse, error)
}
