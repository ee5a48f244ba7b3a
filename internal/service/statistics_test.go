package service_test

import (
	"testing"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"
	"volunteer-hub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatisticsServiceTestSuite defines the test suite for StatisticsService
type StatisticsServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockGroupRepo     *mocks.MockGroupRepositoryInterface
	statisticsService *service.StatisticsService
	factories         *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *StatisticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.statisticsService = service.NewStatisticsService(suite.mockGroupRepo)
}

// TearDownTest cleans up after each test
func (suite *StatisticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestOverview tests the aggregates; leaders count toward volunteer totals
func (suite *StatisticsServiceTestSuite) TestOverview() {
	small := suite.factories.Group.Create()
	small.Members = []models.Volunteer{*suite.factories.Volunteer.Create()}
	large := suite.factories.Group.Full()

	suite.mockGroupRepo.EXPECT().GetAll().Return([]models.Group{*small, *large}, nil).Times(1)

	stats, err := suite.statisticsService.Overview()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, stats.TotalGroups)
	// 1 member + leader, plus 5 members + leader
	assert.Equal(suite.T(), 8, stats.TotalVolunteers)
	assert.InDelta(suite.T(), 4.0, stats.AverageGroupSize, 0.001)
}

// TestOverviewNoGroups tests the aggregates before any group exists
func (suite *StatisticsServiceTestSuite) TestOverviewNoGroups() {
	suite.mockGroupRepo.EXPECT().GetAll().Return([]models.Group{}, nil).Times(1)

	stats, err := suite.statisticsService.Overview()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, stats.TotalGroups)
	assert.Equal(suite.T(), 0, stats.TotalVolunteers)
	assert.Zero(suite.T(), stats.AverageGroupSize)
}

// TestOverviewRepositoryFailure tests that a storage failure surfaces
func (suite *StatisticsServiceTestSuite) TestOverviewRepositoryFailure() {
	suite.mockGroupRepo.EXPECT().GetAll().Return(nil, assert.AnError).Times(1)

	stats, err := suite.statisticsService.Overview()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), stats)
}

// TestStatisticsServiceTestSuite runs the test suite
func TestStatisticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}
