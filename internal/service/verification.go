package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"volunteer-hub-backend/internal/codegen"
	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/delivery"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VerificationStage is the position of a session in the identity workflow.
// The flow is strictly sequential: mobile, then email, then government ID.
type VerificationStage string

const (
	StageMobilePending       VerificationStage = "mobile_pending"
	StageEmailPending        VerificationStage = "email_pending"
	StageGovernmentIDPending VerificationStage = "governmentid_pending"
	StageCompleted           VerificationStage = "completed"
	StageCancelled           VerificationStage = "cancelled"
)

// minimum length of a government ID number; the only rule applied before the
// provider round trip
const minGovernmentIDLength = 10

// session is the per-volunteer working state of the verifier. Issued OTPs
// live only here and are never persisted.
type session struct {
	id        uuid.UUID
	volunteer models.Volunteer
	stage     VerificationStage
	mobileOTP string
	emailOTP  string
	createdAt time.Time
}

// VerificationService drives volunteers through the three-stage identity
// workflow. It holds all session state in memory and depends only on the
// delivery capabilities, never on concrete channels.
type VerificationService struct {
	sender    delivery.OtpSender
	verifier  delivery.IdentityVerifier
	validator *validator.Validate
	log       *logger.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewVerificationService creates a new verification service
func NewVerificationService(sender delivery.OtpSender, verifier delivery.IdentityVerifier, validator *validator.Validate) *VerificationService {
	return &VerificationService{
		sender:    sender,
		verifier:  verifier,
		validator: validator,
		log:       logger.WithComponent("verification"),
		sessions:  make(map[uuid.UUID]*session),
	}
}

// StartVerificationRequest represents the contact details a volunteer
// submits to begin verification
type StartVerificationRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"required,max=20"`
}

// SubmitOTPRequest represents an OTP candidate entered by the volunteer
type SubmitOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// SubmitGovernmentIDRequest represents the final verification stage input
type SubmitGovernmentIDRequest struct {
	Type   models.GovernmentIDType `json:"type" validate:"required"`
	Number string                  `json:"number" validate:"required"`
}

// VerificationResponse represents the observable state of a session
type VerificationResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Stage     VerificationStage         `json:"stage"`
	Status    models.VerificationStatus `json:"status"`
	Volunteer models.Volunteer          `json:"volunteer"`
}

// Start opens a new verification session for the given contact details. The
// volunteer record exists only in memory until verification completes and a
// group operation persists it.
func (s *VerificationService) Start(req *StartVerificationRequest) (*VerificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sess := &session{
		id: uuid.New(),
		volunteer: models.Volunteer{
			ID:       uuid.New(),
			UID:      codegen.GenerateVolunteerUID(),
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			JoinedAt: time.Now(),
		},
		stage:     StageMobilePending,
		createdAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.log.WithField("session_id", sess.id).Info("verification session started")
	return s.toResponse(sess), nil
}

// RequestMobileOTP issues a mobile OTP and hands it to the sender. The OTP
// is only retained for comparison once delivery succeeds.
func (s *VerificationService) RequestMobileOTP(ctx context.Context, id uuid.UUID) (*VerificationResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if sess.stage != StageMobilePending {
		s.mu.Unlock()
		return nil, apperrors.ErrWrongVerificationStage
	}
	phone := sess.volunteer.Phone
	s.mu.Unlock()

	otp := codegen.GenerateOTP()
	if err := s.sender.SendMobileOTP(ctx, phone, otp); err != nil {
		return nil, apperrors.NewDeliveryError("sms", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.mobileOTP = otp
	return s.toResponse(sess), nil
}

// SubmitMobileOTP compares the candidate against the issued mobile OTP. On
// success the mobile stage flag is set (and never cleared again) and the
// session advances; on mismatch the session is left untouched.
func (s *VerificationService) SubmitMobileOTP(id uuid.UUID, req *SubmitOTPRequest) (*VerificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.stage != StageMobilePending {
		return nil, apperrors.ErrWrongVerificationStage
	}
	if sess.mobileOTP == "" {
		return nil, apperrors.ErrOtpNotRequested
	}
	if req.OTP != sess.mobileOTP {
		return nil, apperrors.ErrOtpMismatch
	}

	v := sess.volunteer
	v.VerificationStatus.Mobile = true
	sess.volunteer = v
	sess.stage = StageEmailPending

	return s.toResponse(sess), nil
}

// RequestEmailOTP issues an email OTP, symmetric to the mobile stage
func (s *VerificationService) RequestEmailOTP(ctx context.Context, id uuid.UUID) (*VerificationResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if sess.stage != StageEmailPending {
		s.mu.Unlock()
		return nil, apperrors.ErrWrongVerificationStage
	}
	email := sess.volunteer.Email
	s.mu.Unlock()

	otp := codegen.GenerateOTP()
	if err := s.sender.SendEmailOTP(ctx, email, otp); err != nil {
		return nil, apperrors.NewDeliveryError("email", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.emailOTP = otp
	return s.toResponse(sess), nil
}

// SubmitEmailOTP compares the candidate against the issued email OTP
func (s *VerificationService) SubmitEmailOTP(id uuid.UUID, req *SubmitOTPRequest) (*VerificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.stage != StageEmailPending {
		return nil, apperrors.ErrWrongVerificationStage
	}
	if sess.emailOTP == "" {
		return nil, apperrors.ErrOtpNotRequested
	}
	if req.OTP != sess.emailOTP {
		return nil, apperrors.ErrOtpMismatch
	}

	v := sess.volunteer
	v.VerificationStatus.Email = true
	sess.volunteer = v
	sess.stage = StageGovernmentIDPending

	return s.toResponse(sess), nil
}

// SubmitGovernmentID runs the final stage: a minimum-length check on the ID
// number, then the provider round trip. Success completes the session and
// attaches the verified ID record; failure leaves the session unchanged.
func (s *VerificationService) SubmitGovernmentID(ctx context.Context, id uuid.UUID, req *SubmitGovernmentIDRequest) (*VerificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidIDType
	}

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if sess.stage != StageGovernmentIDPending {
		return nil, apperrors.ErrWrongVerificationStage
	}

	if len(req.Number) < minGovernmentIDLength {
		return nil, apperrors.ErrIDVerificationFailed
	}

	payload, err := s.verifier.Verify(ctx, sess.volunteer.Name, req.Type, req.Number)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIDVerificationFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := sess.volunteer
	v.VerificationStatus.GovernmentID = true
	v.GovernmentID = &models.GovernmentID{
		Type:         req.Type,
		Number:       req.Number,
		Verified:     true,
		ProviderData: payload,
	}
	sess.volunteer = v
	sess.stage = StageCompleted

	s.log.WithField("session_id", sess.id).Info("verification completed")
	return s.toResponse(sess), nil
}

// Get returns the current state of a session
func (s *VerificationService) Get(id uuid.UUID) (*VerificationResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Result returns the fully verified volunteer of a completed session without
// touching the session; callers that act on the result call Consume afterwards.
func (s *VerificationService) Result(id uuid.UUID) (*models.Volunteer, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.stage != StageCompleted {
		return nil, apperrors.ErrVerificationIncomplete
	}
	v := sess.volunteer
	return &v, nil
}

// Consume removes a completed session once a group operation has used its
// volunteer. The verified record lives on inside the group; the session is
// spent and cannot back a second operation.
func (s *VerificationService) Consume(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperrors.ErrVerificationNotFound
	}
	if sess.stage != StageCompleted {
		return apperrors.ErrVerificationIncomplete
	}

	delete(s.sessions, id)
	s.log.WithField("session_id", id).Info("verification session consumed")
	return nil
}

// Cancel discards a session. It is available at any non-completed stage and
// has no persisted side effects: the in-progress volunteer simply vanishes.
func (s *VerificationService) Cancel(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperrors.ErrVerificationNotFound
	}
	if sess.stage == StageCompleted {
		return apperrors.ErrVerificationCompleted
	}

	delete(s.sessions, id)
	s.log.WithField("session_id", id).Info("verification session cancelled")
	return nil
}

func (s *VerificationService) get(id uuid.UUID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrVerificationNotFound
	}
	return sess, nil
}

func (s *VerificationService) toResponse(sess *session) *VerificationResponse {
	return &VerificationResponse{
		ID:        sess.id,
		Stage:     sess.stage,
		Status:    sess.volunteer.VerificationStatus,
		Volunteer: sess.volunteer,
	}
}
