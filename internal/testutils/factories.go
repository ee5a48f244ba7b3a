package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"volunteer-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

// VolunteerFactory provides methods to create test Volunteer data
type VolunteerFactory struct{}

// NewVolunteerFactory creates a new VolunteerFactory
func NewVolunteerFactory() *VolunteerFactory {
	return &VolunteerFactory{}
}

// Create creates a fully verified test Volunteer with default values. The
// email is derived from the ID so factory output never collides.
func (f *VolunteerFactory) Create() *models.Volunteer {
	id := uuid.New()
	return &models.Volunteer{
		ID:       id,
		UID:      "VOL123456ABCD",
		Name:     "Priya Sharma",
		Email:    fmt.Sprintf("priya.%s@test.com", id.String()[:8]),
		Phone:    "+911234567890",
		JoinedAt: time.Now(),
		VerificationStatus: models.VerificationStatus{
			Mobile:       true,
			Email:        true,
			GovernmentID: true,
		},
		GovernmentID: &models.GovernmentID{
			Type:         models.GovernmentIDAadhaar,
			Number:       "123412341234",
			Verified:     true,
			ProviderData: json.RawMessage(`{"verified":true}`),
		},
	}
}

// WithEmail sets a custom email for the volunteer
func (f *VolunteerFactory) WithEmail(email string) *models.Volunteer {
	volunteer := f.Create()
	volunteer.Email = email
	return volunteer
}

// Unverified creates a volunteer that has not completed verification
func (f *VolunteerFactory) Unverified() *models.Volunteer {
	volunteer := f.Create()
	volunteer.VerificationStatus = models.VerificationStatus{}
	volunteer.GovernmentID = nil
	return volunteer
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		ID:   uuid.New(),
		Name: "Beach Cleanup Crew",
		Code: "AB12CD34",
		Leader: models.Leader{
			UID:   "VOL999999ZZZZ",
			Name:  "Arjun Rao",
			Email: "arjun.rao@test.com",
			Phone: "+911234567899",
		},
		Members:    []models.Volunteer{},
		CreatedAt:  time.Now(),
		MaxMembers: 5,
	}
}

// WithCode sets a custom join code for the group
func (f *GroupFactory) WithCode(code string) *models.Group {
	group := f.Create()
	group.Code = code
	return group
}

// WithCapacity sets a custom member capacity for the group
func (f *GroupFactory) WithCapacity(maxMembers int) *models.Group {
	group := f.Create()
	group.MaxMembers = maxMembers
	return group
}

// Full creates a group whose member list is at capacity
func (f *GroupFactory) Full() *models.Group {
	group := f.Create()
	volunteers := NewVolunteerFactory()
	for i := 0; i < group.MaxMembers; i++ {
		group.Members = append(group.Members, *volunteers.Create())
	}
	return group
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		ID:          uuid.New(),
		Name:        "Logistics",
		Description: "Venue setup and supplies",
		Color:       "#F59E0B",
		SPOCIDs:     []uuid.UUID{},
		Active:      true,
		CreatedAt:   time.Now(),
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	department := f.Create()
	department.Name = name
	return department
}

// SPOCFactory provides methods to create test SPOC data
type SPOCFactory struct{}

// NewSPOCFactory creates a new SPOCFactory
func NewSPOCFactory() *SPOCFactory {
	return &SPOCFactory{}
}

// Create creates a test SPOC with default values
func (f *SPOCFactory) Create() *models.SPOC {
	id := uuid.New()
	return &models.SPOC{
		ID:               id,
		Name:             "Asha Menon",
		Email:            fmt.Sprintf("asha.%s@test.com", id.String()[:8]),
		Phone:            "+911234567891",
		DepartmentID:     uuid.New(),
		AssignedGroupIDs: []uuid.UUID{},
		CreatedAt:        time.Now(),
	}
}

// WithDepartment sets the department ID for the SPOC
func (f *SPOCFactory) WithDepartment(departmentID uuid.UUID) *models.SPOC {
	spoc := f.Create()
	spoc.DepartmentID = departmentID
	return spoc
}

// FactorySet provides access to all factories
type FactorySet struct {
	Volunteer  *VolunteerFactory
	Group      *GroupFactory
	Department *DepartmentFactory
	SPOC       *SPOCFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Volunteer:  NewVolunteerFactory(),
		Group:      NewGroupFactory(),
		Department: NewDepartmentFactory(),
		SPOC:       NewSPOCFactory(),
	}
}
