package delivery_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSenderZeroDelay(t *testing.T) {
	sender := delivery.NewSimulatedSender(0)

	assert.NoError(t, sender.SendMobileOTP(context.Background(), "+911234567890", "123456"))
	assert.NoError(t, sender.SendEmailOTP(context.Background(), "priya@example.com", "654321"))
}

func TestSimulatedSenderContextCancelled(t *testing.T) {
	sender := delivery.NewSimulatedSender(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendMobileOTP(ctx, "+911234567890", "123456")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedVerifierPayload(t *testing.T) {
	verifier := delivery.NewSimulatedVerifier(0)

	payload, err := verifier.Verify(context.Background(), "Priya Sharma", models.GovernmentIDAadhaar, "123412341234")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, true, decoded["verified"])
	assert.Equal(t, "Priya Sharma", decoded["name"])
	assert.Equal(t, string(models.GovernmentIDAadhaar), decoded["id_type"])
}

func TestSimulatedVerifierContextCancelled(t *testing.T) {
	verifier := delivery.NewSimulatedVerifier(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	payload, err := verifier.Verify(ctx, "Priya Sharma", models.GovernmentIDAadhaar, "123412341234")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, payload)
}
