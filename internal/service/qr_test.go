package service_test

import (
	"bytes"
	"testing"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// QRServiceTestSuite defines the test suite for QRService
type QRServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrgRepo *mocks.MockOrganizationRepositoryInterface
	qrService   *service.QRService
}

// SetupTest sets up the test suite
func (suite *QRServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)

	suite.qrService = service.NewQRService(suite.mockOrgRepo)
}

// TearDownTest cleans up after each test
func (suite *QRServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestEncode tests rendering a join URL as a PNG
func (suite *QRServiceTestSuite) TestEncode() {
	suite.mockOrgRepo.EXPECT().Get().Return(&models.Organization{PrimaryColor: "#3B82F6"}, nil).Times(1)

	png, err := suite.qrService.Encode("http://localhost:5173/join?code=AB12CD34", 256)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), bytes.HasPrefix(png, pngMagic))
}

// TestEncodeDefaultSize tests that a non-positive size falls back to the default
func (suite *QRServiceTestSuite) TestEncodeDefaultSize() {
	suite.mockOrgRepo.EXPECT().Get().Return(&models.Organization{}, nil).Times(1)

	png, err := suite.qrService.Encode("http://localhost:5173/join?code=AB12CD34", 0)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), bytes.HasPrefix(png, pngMagic))
}

// TestEncodeMalformedBrandColor tests that a bad brand color does not break
// rendering
func (suite *QRServiceTestSuite) TestEncodeMalformedBrandColor() {
	suite.mockOrgRepo.EXPECT().Get().Return(&models.Organization{PrimaryColor: "blue"}, nil).Times(1)

	png, err := suite.qrService.Encode("http://localhost:5173/join?code=AB12CD34", 256)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), bytes.HasPrefix(png, pngMagic))
}

// TestEncodeOrganizationReadFailure tests that a failing settings read aborts
// the render
func (suite *QRServiceTestSuite) TestEncodeOrganizationReadFailure() {
	suite.mockOrgRepo.EXPECT().Get().Return(nil, assert.AnError).Times(1)

	png, err := suite.qrService.Encode("http://localhost:5173/join?code=AB12CD34", 256)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), png)
}

// TestQRServiceTestSuite runs the test suite
func TestQRServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QRServiceTestSuite))
}
