package handlers

import (
	"errors"
	"net/http"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VerificationHandler handles HTTP requests for the identity verification
// workflow. One session per prospective leader or member.
type VerificationHandler struct {
	service service.VerificationServiceInterface
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(service service.VerificationServiceInterface) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// StartVerification opens a new verification session
// @Summary Start a verification session
// @Description Begin the three-stage identity verification workflow for a volunteer
// @Tags verifications
// @Accept json
// @Produce json
// @Param contact body service.StartVerificationRequest true "Volunteer contact details"
// @Success 201 {object} service.VerificationResponse "Session created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /verifications [post]
func (h *VerificationHandler) StartVerification(c *gin.Context) {
	var req service.StartVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.Start(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetVerification returns the state of a session
// @Summary Get verification session
// @Description Get the current stage and status of a verification session
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.VerificationResponse "Session state"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /verifications/{id} [get]
func (h *VerificationHandler) GetVerification(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.Get(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// RequestMobileOTP issues and delivers a mobile OTP
// @Summary Request mobile OTP
// @Description Generate a mobile OTP and deliver it over the SMS channel
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.VerificationResponse "OTP sent"
// @Failure 400 {object} ErrorResponse "Wrong stage"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Delivery failed"
// @Router /verifications/{id}/mobile/request [post]
func (h *VerificationHandler) RequestMobileOTP(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.RequestMobileOTP(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitMobileOTP verifies the mobile OTP candidate
// @Summary Submit mobile OTP
// @Description Compare the entered OTP against the issued mobile OTP
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param otp body service.SubmitOTPRequest true "OTP candidate"
// @Success 200 {object} service.VerificationResponse "Mobile stage verified"
// @Failure 400 {object} ErrorResponse "OTP mismatch"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /verifications/{id}/mobile/submit [post]
func (h *VerificationHandler) SubmitMobileOTP(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req service.SubmitOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "otp"})
		return
	}

	session, err := h.service.SubmitMobileOTP(id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// RequestEmailOTP issues and delivers an email OTP
// @Summary Request email OTP
// @Description Generate an email OTP and deliver it over the email channel
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.VerificationResponse "OTP sent"
// @Failure 400 {object} ErrorResponse "Wrong stage"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Delivery failed"
// @Router /verifications/{id}/email/request [post]
func (h *VerificationHandler) RequestEmailOTP(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.RequestEmailOTP(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitEmailOTP verifies the email OTP candidate
// @Summary Submit email OTP
// @Description Compare the entered OTP against the issued email OTP
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param otp body service.SubmitOTPRequest true "OTP candidate"
// @Success 200 {object} service.VerificationResponse "Email stage verified"
// @Failure 400 {object} ErrorResponse "OTP mismatch"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /verifications/{id}/email/submit [post]
func (h *VerificationHandler) SubmitEmailOTP(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req service.SubmitOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "otp"})
		return
	}

	session, err := h.service.SubmitEmailOTP(id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitGovernmentID runs the final verification stage
// @Summary Submit government ID
// @Description Check the government ID and complete the verification workflow
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param governmentId body service.SubmitGovernmentIDRequest true "Government ID details"
// @Success 200 {object} service.VerificationResponse "Verification completed"
// @Failure 400 {object} ErrorResponse "ID verification failed"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /verifications/{id}/government-id [post]
func (h *VerificationHandler) SubmitGovernmentID(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req service.SubmitGovernmentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "government_id"})
		return
	}

	session, err := h.service.SubmitGovernmentID(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// CancelVerification discards a session
// @Summary Cancel verification
// @Description Cancel an in-progress verification session, discarding all state
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Session cancelled"
// @Failure 400 {object} ErrorResponse "Session already completed"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /verifications/{id} [delete]
func (h *VerificationHandler) CancelVerification(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VerificationHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *VerificationHandler) renderError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrOtpMismatch), errors.Is(err, apperrors.ErrOtpNotRequested):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "otp"})
	case errors.Is(err, apperrors.ErrIDVerificationFailed), errors.Is(err, apperrors.ErrInvalidIDType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "government_id"})
	case apperrors.IsDelivery(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrWrongVerificationStage), errors.Is(err, apperrors.ErrVerificationCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
