package handlers

import (
	"net/http"
	"testing"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/v1/organization", suite.handler.GetOrganization)
	suite.httpSuite.Router.PUT("/api/v1/organization", suite.handler.UpdateOrganization)
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetOrganization tests reading the settings over HTTP
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	org := models.DefaultOrganization()
	suite.mockService.EXPECT().Get().Return(&org, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organization", nil)

	var response models.Organization
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Volunteer Hub", response.Name)
}

// TestUpdateOrganization tests updating the settings over HTTP
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	updated := &models.Organization{Name: "City Relief Network", Theme: "dark"}
	suite.mockService.EXPECT().Update(gomock.Any()).Return(updated, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organization", map[string]interface{}{
		"name":  "City Relief Network",
		"theme": "dark",
	})

	var response models.Organization
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "City Relief Network", response.Name)
	assert.Equal(suite.T(), "dark", response.Theme)
}

// TestUpdateOrganizationInvalidBody tests a malformed request body
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organization", "not an object")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
