package service_test

import (
	"context"
	"testing"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VerificationServiceTestSuite defines the test suite for VerificationService
type VerificationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockSender          *mocks.MockOtpSender
	mockVerifier        *mocks.MockIdentityVerifier
	verificationService *service.VerificationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSender = mocks.NewMockOtpSender(suite.ctrl)
	suite.mockVerifier = mocks.NewMockIdentityVerifier(suite.ctrl)
	suite.validator = validator.New()

	suite.verificationService = service.NewVerificationService(suite.mockSender, suite.mockVerifier, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *VerificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VerificationServiceTestSuite) startSession() *service.VerificationResponse {
	resp, err := suite.verificationService.Start(&service.StartVerificationRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Phone: "+911234567890",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	return resp
}

// captureMobileOTP requests a mobile OTP and returns the code the sender saw
func (suite *VerificationServiceTestSuite) captureMobileOTP(id uuid.UUID) string {
	var otp string
	suite.mockSender.EXPECT().
		SendMobileOTP(gomock.Any(), "+911234567890", gomock.Any()).
		Do(func(_ context.Context, _, code string) { otp = code }).
		Return(nil).
		Times(1)

	_, err := suite.verificationService.RequestMobileOTP(context.Background(), id)
	suite.Require().NoError(err)
	return otp
}

func (suite *VerificationServiceTestSuite) captureEmailOTP(id uuid.UUID) string {
	var otp string
	suite.mockSender.EXPECT().
		SendEmailOTP(gomock.Any(), "priya@example.com", gomock.Any()).
		Do(func(_ context.Context, _, code string) { otp = code }).
		Return(nil).
		Times(1)

	_, err := suite.verificationService.RequestEmailOTP(context.Background(), id)
	suite.Require().NoError(err)
	return otp
}

// completeSession walks a fresh session through all three stages
func (suite *VerificationServiceTestSuite) completeSession() uuid.UUID {
	resp := suite.startSession()
	id := resp.ID

	otp := suite.captureMobileOTP(id)
	_, err := suite.verificationService.SubmitMobileOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)
	otp = suite.captureEmailOTP(id)
	_, err = suite.verificationService.SubmitEmailOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)

	suite.mockVerifier.EXPECT().
		Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"verified":true}`), nil).
		Times(1)
	_, err = suite.verificationService.SubmitGovernmentID(context.Background(), id, &service.SubmitGovernmentIDRequest{
		Type:   models.GovernmentIDAadhaar,
		Number: "123412341234",
	})
	suite.Require().NoError(err)
	return id
}

// TestStart tests opening a session
func (suite *VerificationServiceTestSuite) TestStart() {
	resp := suite.startSession()

	assert.Equal(suite.T(), service.StageMobilePending, resp.Stage)
	assert.False(suite.T(), resp.Status.Mobile)
	assert.False(suite.T(), resp.Status.Email)
	assert.False(suite.T(), resp.Status.GovernmentID)
	assert.NotEmpty(suite.T(), resp.Volunteer.UID)
	assert.Equal(suite.T(), "priya@example.com", resp.Volunteer.Email)
}

// TestStartValidationError tests opening a session with bad contact details
func (suite *VerificationServiceTestSuite) TestStartValidationError() {
	resp, err := suite.verificationService.Start(&service.StartVerificationRequest{
		Name:  "Priya Sharma",
		Email: "not-an-email",
		Phone: "+911234567890",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

// TestFullWorkflow walks a session from start to completed and checks the
// verified volunteer it yields
func (suite *VerificationServiceTestSuite) TestFullWorkflow() {
	resp := suite.startSession()
	id := resp.ID

	otp := suite.captureMobileOTP(id)
	resp, err := suite.verificationService.SubmitMobileOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageEmailPending, resp.Stage)
	assert.True(suite.T(), resp.Status.Mobile)

	otp = suite.captureEmailOTP(id)
	resp, err = suite.verificationService.SubmitEmailOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageGovernmentIDPending, resp.Stage)
	assert.True(suite.T(), resp.Status.Email)

	suite.mockVerifier.EXPECT().
		Verify(gomock.Any(), "Priya Sharma", models.GovernmentIDAadhaar, "123412341234").
		Return([]byte(`{"verified":true}`), nil).
		Times(1)

	resp, err = suite.verificationService.SubmitGovernmentID(context.Background(), id, &service.SubmitGovernmentIDRequest{
		Type:   models.GovernmentIDAadhaar,
		Number: "123412341234",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageCompleted, resp.Stage)
	assert.True(suite.T(), resp.Status.GovernmentID)

	volunteer, err := suite.verificationService.Result(id)
	suite.Require().NoError(err)
	assert.True(suite.T(), volunteer.FullyVerified())
	assert.NotNil(suite.T(), volunteer.GovernmentID)
	assert.True(suite.T(), volunteer.GovernmentID.Verified)
}

// TestSubmitMobileOTPMismatch tests that a wrong OTP leaves the session alone
func (suite *VerificationServiceTestSuite) TestSubmitMobileOTPMismatch() {
	resp := suite.startSession()
	id := resp.ID

	otp := suite.captureMobileOTP(id)
	wrong := "000000"
	if wrong == otp {
		wrong = "000001"
	}

	_, err := suite.verificationService.SubmitMobileOTP(id, &service.SubmitOTPRequest{OTP: wrong})
	assert.ErrorIs(suite.T(), err, apperrors.ErrOtpMismatch)

	// Session did not advance and the correct OTP still works
	state, err := suite.verificationService.Get(id)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageMobilePending, state.Stage)
	assert.False(suite.T(), state.Status.Mobile)

	state, err = suite.verificationService.SubmitMobileOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageEmailPending, state.Stage)
}

// TestSubmitMobileOTPBeforeRequest tests submitting before any OTP was issued
func (suite *VerificationServiceTestSuite) TestSubmitMobileOTPBeforeRequest() {
	resp := suite.startSession()

	_, err := suite.verificationService.SubmitMobileOTP(resp.ID, &service.SubmitOTPRequest{OTP: "123456"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrOtpNotRequested)
}

// TestRequestMobileOTPDeliveryFailure tests that a send error surfaces as a
// delivery failure and no OTP is retained
func (suite *VerificationServiceTestSuite) TestRequestMobileOTPDeliveryFailure() {
	resp := suite.startSession()

	suite.mockSender.EXPECT().
		SendMobileOTP(gomock.Any(), "+911234567890", gomock.Any()).
		Return(assert.AnError).
		Times(1)

	_, err := suite.verificationService.RequestMobileOTP(context.Background(), resp.ID)
	assert.True(suite.T(), apperrors.IsDelivery(err))

	_, err = suite.verificationService.SubmitMobileOTP(resp.ID, &service.SubmitOTPRequest{OTP: "123456"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrOtpNotRequested)
}

// TestStageOrderEnforced tests that stages cannot be skipped
func (suite *VerificationServiceTestSuite) TestStageOrderEnforced() {
	resp := suite.startSession()

	// Email OTP cannot be requested while mobile is pending
	_, err := suite.verificationService.RequestEmailOTP(context.Background(), resp.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWrongVerificationStage)

	// Government ID cannot be submitted while mobile is pending
	_, err = suite.verificationService.SubmitGovernmentID(context.Background(), resp.ID, &service.SubmitGovernmentIDRequest{
		Type:   models.GovernmentIDPAN,
		Number: "1234567890",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrWrongVerificationStage)
}

// TestSubmitGovernmentIDTooShort tests the minimum-length rule. The provider
// is never consulted for a number that fails it.
func (suite *VerificationServiceTestSuite) TestSubmitGovernmentIDTooShort() {
	resp := suite.startSession()
	id := resp.ID

	otp := suite.captureMobileOTP(id)
	_, err := suite.verificationService.SubmitMobileOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)
	otp = suite.captureEmailOTP(id)
	_, err = suite.verificationService.SubmitEmailOTP(id, &service.SubmitOTPRequest{OTP: otp})
	suite.Require().NoError(err)

	_, err = suite.verificationService.SubmitGovernmentID(context.Background(), id, &service.SubmitGovernmentIDRequest{
		Type:   models.GovernmentIDAadhaar,
		Number: "123456789",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrIDVerificationFailed)

	// Session still waits at the government ID stage
	state, err := suite.verificationService.Get(id)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.StageGovernmentIDPending, state.Stage)
	assert.False(suite.T(), state.Status.GovernmentID)
}

// TestSubmitGovernmentIDInvalidType tests an unsupported ID kind
func (suite *VerificationServiceTestSuite) TestSubmitGovernmentIDInvalidType() {
	resp := suite.startSession()

	_, err := suite.verificationService.SubmitGovernmentID(context.Background(), resp.ID, &service.SubmitGovernmentIDRequest{
		Type:   models.GovernmentIDType("voter_id"),
		Number: "1234567890",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidIDType)
}

// TestResultBeforeCompletion tests that an unfinished session yields nothing
func (suite *VerificationServiceTestSuite) TestResultBeforeCompletion() {
	resp := suite.startSession()

	volunteer, err := suite.verificationService.Result(resp.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationIncomplete)
	assert.Nil(suite.T(), volunteer)
}

// TestCancel tests discarding an in-progress session
func (suite *VerificationServiceTestSuite) TestCancel() {
	resp := suite.startSession()

	err := suite.verificationService.Cancel(resp.ID)
	assert.NoError(suite.T(), err)

	_, err = suite.verificationService.Get(resp.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationNotFound)
}

// TestCancelCompleted tests that a completed session cannot be cancelled
func (suite *VerificationServiceTestSuite) TestCancelCompleted() {
	id := suite.completeSession()

	err := suite.verificationService.Cancel(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationCompleted)
}

// TestConsume tests that a consumed session is gone and cannot back a second
// group operation
func (suite *VerificationServiceTestSuite) TestConsume() {
	id := suite.completeSession()

	volunteer, err := suite.verificationService.Result(id)
	suite.Require().NoError(err)
	assert.True(suite.T(), volunteer.FullyVerified())

	err = suite.verificationService.Consume(id)
	assert.NoError(suite.T(), err)

	_, err = suite.verificationService.Result(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationNotFound)
	_, err = suite.verificationService.Get(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationNotFound)
}

// TestConsumeIncomplete tests that only completed sessions can be consumed
func (suite *VerificationServiceTestSuite) TestConsumeIncomplete() {
	resp := suite.startSession()

	err := suite.verificationService.Consume(resp.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationIncomplete)

	// The in-progress session survives
	_, err = suite.verificationService.Get(resp.ID)
	assert.NoError(suite.T(), err)
}

// TestGetUnknownSession tests looking up a session that does not exist
func (suite *VerificationServiceTestSuite) TestGetUnknownSession() {
	_, err := suite.verificationService.Get(uuid.New())
	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationNotFound)
}

// TestVerificationServiceTestSuite runs the test suite
func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
