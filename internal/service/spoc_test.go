package service_test

import (
	"testing"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"
	"volunteer-hub-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SPOCServiceTestSuite defines the test suite for SPOCService
type SPOCServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockSPOCRepositoryInterface
	mockDepartmentRepo *mocks.MockDepartmentRepositoryInterface
	spocService        *service.SPOCService
	validator          *validator.Validate
	factories          *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *SPOCServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSPOCRepositoryInterface(suite.ctrl)
	suite.mockDepartmentRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.factories = testutils.NewFactorySet()

	suite.spocService = service.NewSPOCService(suite.mockRepo, suite.mockDepartmentRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *SPOCServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSPOC tests creating a SPOC and recording it on the department
func (suite *SPOCServiceTestSuite) TestCreateSPOC() {
	department := suite.factories.Department.Create()
	req := &service.CreateSPOCRequest{
		Name:         "Asha Menon",
		Email:        "asha.menon@test.com",
		Phone:        "+911234567891",
		DepartmentID: department.ID,
	}

	suite.mockDepartmentRepo.EXPECT().GetByID(department.ID).Return(department, nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(nil, apperrors.ErrSPOCNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockDepartmentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Department) error {
		assert.Len(suite.T(), updated.SPOCIDs, 1)
		return nil
	}).Times(1)

	response, err := suite.spocService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Asha Menon", response.Name)
	assert.Equal(suite.T(), department.ID, response.DepartmentID)
	assert.Empty(suite.T(), response.AssignedGroupIDs)
}

// TestCreateSPOCDepartmentNotFound tests creating against an unknown department
func (suite *SPOCServiceTestSuite) TestCreateSPOCDepartmentNotFound() {
	id := uuid.New()
	suite.mockDepartmentRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrDepartmentNotFound).Times(1)

	response, err := suite.spocService.Create(&service.CreateSPOCRequest{
		Name:         "Asha Menon",
		Email:        "asha.menon@test.com",
		DepartmentID: id,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
	assert.Nil(suite.T(), response)
}

// TestCreateSPOCDuplicateEmail tests rejecting an already registered email
func (suite *SPOCServiceTestSuite) TestCreateSPOCDuplicateEmail() {
	department := suite.factories.Department.Create()
	existing := suite.factories.SPOC.Create()

	suite.mockDepartmentRepo.EXPECT().GetByID(department.ID).Return(department, nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(existing.Email).Return(existing, nil).Times(1)

	response, err := suite.spocService.Create(&service.CreateSPOCRequest{
		Name:         "Asha Menon",
		Email:        existing.Email,
		DepartmentID: department.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSPOCExists)
	assert.Nil(suite.T(), response)
}

// TestGetByDepartment tests listing SPOCs scoped to a department
func (suite *SPOCServiceTestSuite) TestGetByDepartment() {
	department := suite.factories.Department.Create()
	spocs := []models.SPOC{
		*suite.factories.SPOC.WithDepartment(department.ID),
		*suite.factories.SPOC.WithDepartment(department.ID),
	}

	suite.mockDepartmentRepo.EXPECT().GetByID(department.ID).Return(department, nil).Times(1)
	suite.mockRepo.EXPECT().GetByDepartmentID(department.ID).Return(spocs, nil).Times(1)

	response, err := suite.spocService.GetByDepartment(department.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Total)
}

// TestGetByDepartmentNotFound tests listing SPOCs of an unknown department
func (suite *SPOCServiceTestSuite) TestGetByDepartmentNotFound() {
	id := uuid.New()
	suite.mockDepartmentRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrDepartmentNotFound).Times(1)

	response, err := suite.spocService.GetByDepartment(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
	assert.Nil(suite.T(), response)
}

// TestUpdateSPOC tests updating contact details
func (suite *SPOCServiceTestSuite) TestUpdateSPOC() {
	spoc := suite.factories.SPOC.Create()

	suite.mockRepo.EXPECT().GetByID(spoc.ID).Return(spoc, nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail("new.email@test.com").Return(nil, apperrors.ErrSPOCNotFound).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.spocService.Update(spoc.ID, &service.UpdateSPOCRequest{
		Name:  "Asha Menon",
		Email: "new.email@test.com",
		Phone: "+911234567892",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new.email@test.com", response.Email)
}

// TestUpdateSPOCEmailTaken tests moving onto another SPOC's email
func (suite *SPOCServiceTestSuite) TestUpdateSPOCEmailTaken() {
	spoc := suite.factories.SPOC.Create()
	other := suite.factories.SPOC.Create()

	suite.mockRepo.EXPECT().GetByID(spoc.ID).Return(spoc, nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(other.Email).Return(other, nil).Times(1)

	response, err := suite.spocService.Update(spoc.ID, &service.UpdateSPOCRequest{
		Name:  "Asha Menon",
		Email: other.Email,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSPOCExists)
	assert.Nil(suite.T(), response)
}

// TestDeleteSPOC tests deleting a SPOC and detaching it from its department
func (suite *SPOCServiceTestSuite) TestDeleteSPOC() {
	department := suite.factories.Department.Create()
	spoc := suite.factories.SPOC.WithDepartment(department.ID)
	department.SPOCIDs = []uuid.UUID{spoc.ID}

	suite.mockRepo.EXPECT().GetByID(spoc.ID).Return(spoc, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(spoc.ID).Return(nil).Times(1)
	suite.mockDepartmentRepo.EXPECT().GetByID(department.ID).Return(department, nil).Times(1)
	suite.mockDepartmentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Department) error {
		assert.Empty(suite.T(), updated.SPOCIDs)
		return nil
	}).Times(1)

	err := suite.spocService.Delete(spoc.ID)

	assert.NoError(suite.T(), err)
}

// TestDeleteSPOCDepartmentGone tests that a missing department does not fail
// the delete
func (suite *SPOCServiceTestSuite) TestDeleteSPOCDepartmentGone() {
	spoc := suite.factories.SPOC.Create()

	suite.mockRepo.EXPECT().GetByID(spoc.ID).Return(spoc, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(spoc.ID).Return(nil).Times(1)
	suite.mockDepartmentRepo.EXPECT().GetByID(spoc.DepartmentID).Return(nil, apperrors.ErrDepartmentNotFound).Times(1)

	err := suite.spocService.Delete(spoc.ID)

	assert.NoError(suite.T(), err)
}

// TestSPOCServiceTestSuite runs the test suite
func TestSPOCServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SPOCServiceTestSuite))
}
