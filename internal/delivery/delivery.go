// Package delivery defines the out-of-band capabilities the verification
// workflow depends on: OTP delivery over SMS/email and government-ID checks
// against a provider. Production deployments plug in real implementations;
// the defaults here simulate the round trips with fixed delays, matching the
// behavior the tool was originally built around.
package delivery

import (
	"context"
	"encoding/json"
	"time"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/logger"
)

//go:generate mockgen -source=delivery.go -destination=../mocks/delivery_mocks.go -package=mocks

// OtpSender delivers one-time passwords through an out-of-band channel. A
// send error is a delivery failure, distinct from a later code mismatch.
type OtpSender interface {
	SendMobileOTP(ctx context.Context, phone, otp string) error
	SendEmailOTP(ctx context.Context, email, otp string) error
}

// IdentityVerifier checks a government ID against a provider and returns the
// provider's opaque payload on success.
type IdentityVerifier interface {
	Verify(ctx context.Context, name string, idType models.GovernmentIDType, number string) (json.RawMessage, error)
}

// SimulatedSender pretends to deliver OTPs: it waits for the configured
// delay and logs the code. The log line is the stand-in for the SMS/email
// channel, so operators of a demo deployment can complete the flow.
type SimulatedSender struct {
	delay time.Duration
	log   *logger.Logger
}

// NewSimulatedSender creates a simulated OTP sender
func NewSimulatedSender(delay time.Duration) *SimulatedSender {
	return &SimulatedSender{
		delay: delay,
		log:   logger.WithComponent("otp-sender"),
	}
}

// SendMobileOTP simulates an SMS delivery
func (s *SimulatedSender) SendMobileOTP(ctx context.Context, phone, otp string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{"phone": phone, "otp": otp}).Info("simulated SMS OTP delivery")
	return nil
}

// SendEmailOTP simulates an email delivery
func (s *SimulatedSender) SendEmailOTP(ctx context.Context, email, otp string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{"email": email, "otp": otp}).Info("simulated email OTP delivery")
	return nil
}

func (s *SimulatedSender) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SimulatedVerifier pretends to run a provider round trip for government-ID
// verification. It always accepts; the number-length rule is enforced by the
// verification service before the provider is consulted.
type SimulatedVerifier struct {
	delay time.Duration
	log   *logger.Logger
}

// NewSimulatedVerifier creates a simulated identity verifier
func NewSimulatedVerifier(delay time.Duration) *SimulatedVerifier {
	return &SimulatedVerifier{
		delay: delay,
		log:   logger.WithComponent("identity-verifier"),
	}
}

// Verify simulates the provider round trip and returns an opaque payload
func (v *SimulatedVerifier) Verify(ctx context.Context, name string, idType models.GovernmentIDType, number string) (json.RawMessage, error) {
	if v.delay > 0 {
		timer := time.NewTimer(v.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"verified": true,
		"name":     name,
		"id_type":  idType,
	})
	if err != nil {
		return nil, err
	}
	v.log.WithField("id_type", idType).Info("simulated government ID verification")
	return payload, nil
}
