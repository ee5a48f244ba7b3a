package handlers

import (
	"net/http"
	"testing"

	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"
	"volunteer-hub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatisticsHandlerTestSuite defines the test suite for StatisticsHandler
type StatisticsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStatisticsServiceInterface
	handler     *StatisticsHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StatisticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStatisticsServiceInterface(suite.ctrl)
	suite.handler = NewStatisticsHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/v1/statistics", suite.handler.GetStatistics)
}

// TearDownTest cleans up after each test
func (suite *StatisticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStatistics tests the aggregates over HTTP
func (suite *StatisticsHandlerTestSuite) TestGetStatistics() {
	expected := &service.StatisticsResponse{
		TotalGroups:      3,
		TotalVolunteers:  14,
		AverageGroupSize: 14.0 / 3.0,
	}
	suite.mockService.EXPECT().Overview().Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/statistics", nil)

	var response service.StatisticsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 3, response.TotalGroups)
	assert.Equal(suite.T(), 14, response.TotalVolunteers)
	assert.InDelta(suite.T(), 4.667, response.AverageGroupSize, 0.001)
}

// TestGetStatisticsFailure tests a failing aggregate computation
func (suite *StatisticsHandlerTestSuite) TestGetStatisticsFailure() {
	suite.mockService.EXPECT().Overview().Return(nil, assert.AnError).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/statistics", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestStatisticsHandlerTestSuite runs the test suite
func TestStatisticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerTestSuite))
}
