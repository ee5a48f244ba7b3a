package service_test

import (
	"testing"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockOrganizationRepositoryInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.organizationService = service.NewOrganizationService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) storedOrganization() *models.Organization {
	return &models.Organization{
		Name:           "Volunteer Hub",
		Tagline:        "Organize. Verify. Serve.",
		Theme:          "light",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#10B981",
	}
}

// TestGet tests reading the settings record
func (suite *OrganizationServiceTestSuite) TestGet() {
	org := suite.storedOrganization()
	suite.mockRepo.EXPECT().Get().Return(org, nil).Times(1)

	result, err := suite.organizationService.Get()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Volunteer Hub", result.Name)
}

// TestUpdate tests a full settings update
func (suite *OrganizationServiceTestSuite) TestUpdate() {
	suite.mockRepo.EXPECT().Get().Return(suite.storedOrganization(), nil).Times(1)
	suite.mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	result, err := suite.organizationService.Update(&service.UpdateOrganizationRequest{
		Name:           "City Relief Network",
		Tagline:        "Neighbors helping neighbors",
		Theme:          "dark",
		PrimaryColor:   "#EF4444",
		SecondaryColor: "#F59E0B",
		Logo:           "https://example.com/logo.png",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "City Relief Network", result.Name)
	assert.Equal(suite.T(), "dark", result.Theme)
	assert.Equal(suite.T(), "#EF4444", result.PrimaryColor)
	assert.Equal(suite.T(), "https://example.com/logo.png", result.Logo)
}

// TestUpdateKeepsUnsetOptionalFields tests that empty theme and colors keep
// their previous values
func (suite *OrganizationServiceTestSuite) TestUpdateKeepsUnsetOptionalFields() {
	suite.mockRepo.EXPECT().Get().Return(suite.storedOrganization(), nil).Times(1)
	suite.mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	result, err := suite.organizationService.Update(&service.UpdateOrganizationRequest{
		Name: "City Relief Network",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "light", result.Theme)
	assert.Equal(suite.T(), "#3B82F6", result.PrimaryColor)
	assert.Equal(suite.T(), "#10B981", result.SecondaryColor)
}

// TestUpdateInvalidTheme tests rejecting a theme outside light/dark
func (suite *OrganizationServiceTestSuite) TestUpdateInvalidTheme() {
	result, err := suite.organizationService.Update(&service.UpdateOrganizationRequest{
		Name:  "City Relief Network",
		Theme: "sepia",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
