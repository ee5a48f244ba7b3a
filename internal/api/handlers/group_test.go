package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"
	"volunteer-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite defines the test suite for GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockService      *mocks.MockGroupServiceInterface
	mockVerification *mocks.MockVerificationServiceInterface
	mockQR           *mocks.MockQRServiceInterface
	handler          *GroupHandler
	httpSuite        *testutils.HTTPTestSuite
	factories        *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.mockVerification = mocks.NewMockVerificationServiceInterface(suite.ctrl)
	suite.mockQR = mocks.NewMockQRServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService, suite.mockVerification, suite.mockQR)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.factories = testutils.NewFactorySet()

	groups := suite.httpSuite.Router.Group("/api/v1/groups")
	{
		groups.GET("", suite.handler.GetGroups)
		groups.POST("", suite.handler.CreateGroup)
		groups.POST("/join", suite.handler.JoinGroup)
		groups.GET("/by-code/:code", suite.handler.ResolveGroup)
		groups.GET("/:id", suite.handler.GetGroup)
		groups.PUT("/:id/task", suite.handler.AssignTask)
		groups.PUT("/:id/spoc", suite.handler.AssignSPOC)
		groups.GET("/:id/qr", suite.handler.GroupQR)
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) groupResponse() *service.GroupResponse {
	return &service.GroupResponse{
		ID:            uuid.New(),
		Name:          "Beach Cleanup Crew",
		Code:          "AB12CD34",
		FormattedCode: "AB12-CD34",
		JoinURL:       "http://localhost:5173/join?code=AB12CD34",
		MaxMembers:    5,
		HeadCount:     1,
	}
}

// TestCreateGroup tests creating a group from a completed verification session
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	verificationID := uuid.New()
	leader := suite.factories.Volunteer.Create()
	expected := suite.groupResponse()

	suite.mockVerification.EXPECT().Result(verificationID).Return(leader, nil).Times(1)
	suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateGroupRequest) (*service.GroupResponse, error) {
		assert.Equal(suite.T(), "Beach Cleanup Crew", req.Name)
		assert.Equal(suite.T(), leader.Email, req.Leader.Email)
		return expected, nil
	}).Times(1)
	suite.mockVerification.EXPECT().Consume(verificationID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups", map[string]interface{}{
		"name":            "Beach Cleanup Crew",
		"max_members":     5,
		"verification_id": verificationID,
	})

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "AB12CD34", response.Code)
}

// TestCreateGroupIncompleteVerification tests creating with an unfinished session
func (suite *GroupHandlerTestSuite) TestCreateGroupIncompleteVerification() {
	verificationID := uuid.New()
	suite.mockVerification.EXPECT().Result(verificationID).
		Return(nil, apperrors.ErrVerificationIncomplete).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups", map[string]interface{}{
		"name":            "Beach Cleanup Crew",
		"max_members":     5,
		"verification_id": verificationID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "not completed")
}

// TestCreateGroupInvalidCapacity tests the capacity bounds response
func (suite *GroupHandlerTestSuite) TestCreateGroupInvalidCapacity() {
	verificationID := uuid.New()
	suite.mockVerification.EXPECT().Result(verificationID).Return(suite.factories.Volunteer.Create(), nil).Times(1)
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrInvalidCapacity).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups", map[string]interface{}{
		"name":            "Beach Cleanup Crew",
		"max_members":     50,
		"verification_id": verificationID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "capacity must be between")
}

// TestJoinGroup tests a successful join; the verification session is consumed
// so it cannot back another join
func (suite *GroupHandlerTestSuite) TestJoinGroup() {
	verificationID := uuid.New()
	expected := suite.groupResponse()
	expected.HeadCount = 2

	suite.mockVerification.EXPECT().Result(verificationID).Return(suite.factories.Volunteer.Create(), nil).Times(1)
	suite.mockService.EXPECT().Join(gomock.Any()).Return(expected, nil).Times(1)
	suite.mockVerification.EXPECT().Consume(verificationID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups/join", map[string]interface{}{
		"code":            "AB12CD34",
		"verification_id": verificationID,
	})

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.HeadCount)
}

// TestJoinGroupFull tests that a full group maps to 409
func (suite *GroupHandlerTestSuite) TestJoinGroupFull() {
	verificationID := uuid.New()
	suite.mockVerification.EXPECT().Result(verificationID).Return(suite.factories.Volunteer.Create(), nil).Times(1)
	suite.mockService.EXPECT().Join(gomock.Any()).Return(nil, apperrors.ErrGroupFull).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups/join", map[string]interface{}{
		"code":            "AB12CD34",
		"verification_id": verificationID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "member capacity")
}

// TestJoinGroupDuplicateEmail tests that a duplicate email maps to 409
func (suite *GroupHandlerTestSuite) TestJoinGroupDuplicateEmail() {
	verificationID := uuid.New()
	suite.mockVerification.EXPECT().Result(verificationID).Return(suite.factories.Volunteer.Create(), nil).Times(1)
	suite.mockService.EXPECT().Join(gomock.Any()).Return(nil, apperrors.ErrDuplicateEmail).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/groups/join", map[string]interface{}{
		"code":            "AB12CD34",
		"verification_id": verificationID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists in this group")
}

// TestResolveGroup tests code lookup over HTTP
func (suite *GroupHandlerTestSuite) TestResolveGroup() {
	expected := suite.groupResponse()
	suite.mockService.EXPECT().ResolveByCode("ab12-cd34").Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/groups/by-code/ab12-cd34", nil)

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "AB12-CD34", response.FormattedCode)
}

// TestResolveGroupUnknownCode tests that invalid codes map to 404
func (suite *GroupHandlerTestSuite) TestResolveGroupUnknownCode() {
	suite.mockService.EXPECT().ResolveByCode("ZZ99ZZ99").Return(nil, apperrors.ErrInvalidCode).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/groups/by-code/ZZ99ZZ99", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusNotFound, &response)
	assert.Equal(suite.T(), "code", response["field"])
}

// TestAssignTask tests task assignment over HTTP
func (suite *GroupHandlerTestSuite) TestAssignTask() {
	expected := suite.groupResponse()
	expected.Task = "Sort donated supplies"
	suite.mockService.EXPECT().AssignTask(expected.ID, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/groups/%s/task", expected.ID), map[string]interface{}{
		"task": "Sort donated supplies",
	})

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Sort donated supplies", response.Task)
}

// TestAssignSPOC tests SPOC assignment over HTTP
func (suite *GroupHandlerTestSuite) TestAssignSPOC() {
	expected := suite.groupResponse()
	spocID := uuid.New()
	suite.mockService.EXPECT().AssignSPOC(expected.ID, spocID).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/groups/%s/spoc", expected.ID), map[string]interface{}{
		"spoc_id": spocID,
	})

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
}

// TestGetGroupInvalidID tests a malformed group ID
func (suite *GroupHandlerTestSuite) TestGetGroupInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/groups/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid group ID")
}

// TestGroupQR tests rendering the join QR code
func (suite *GroupHandlerTestSuite) TestGroupQR() {
	expected := suite.groupResponse()
	png := []byte{0x89, 'P', 'N', 'G'}
	suite.mockService.EXPECT().GetByID(expected.ID).Return(expected, nil).Times(1)
	suite.mockQR.EXPECT().Encode(expected.JoinURL, 128).Return(png, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/groups/%s/qr?size=128", expected.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "image/png", recorder.Header().Get("Content-Type"))
	assert.True(suite.T(), bytes.Equal(png, recorder.Body.Bytes()))
}

// TestGroupQRInvalidSize tests a non-numeric size parameter
func (suite *GroupHandlerTestSuite) TestGroupQRInvalidSize() {
	expected := suite.groupResponse()
	suite.mockService.EXPECT().GetByID(expected.ID).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/groups/%s/qr?size=huge", expected.ID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid size")
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
