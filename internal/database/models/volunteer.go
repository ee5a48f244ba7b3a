package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GovernmentIDType represents the kind of government-issued ID a volunteer
// can verify with.
type GovernmentIDType string

const (
	GovernmentIDAadhaar        GovernmentIDType = "aadhaar"
	GovernmentIDPAN            GovernmentIDType = "pan"
	GovernmentIDPassport       GovernmentIDType = "passport"
	GovernmentIDDrivingLicense GovernmentIDType = "driving_license"
)

// IsValid reports whether the ID type is one of the supported kinds.
func (t GovernmentIDType) IsValid() bool {
	switch t {
	case GovernmentIDAadhaar, GovernmentIDPAN, GovernmentIDPassport, GovernmentIDDrivingLicense:
		return true
	}
	return false
}

// VerificationStatus tracks the three identity-verification stages
// independently. Each flag is monotonic: once set it is never cleared by the
// normal flow.
type VerificationStatus struct {
	Mobile       bool `json:"mobile"`
	Email        bool `json:"email"`
	GovernmentID bool `json:"government_id"`
}

// GovernmentID is the ID proof attached to a volunteer after the final
// verification stage. ProviderData is whatever opaque payload the
// verification provider returned.
type GovernmentID struct {
	Type         GovernmentIDType `json:"type"`
	Number       string           `json:"number"`
	Verified     bool             `json:"verified"`
	ProviderData json.RawMessage  `json:"provider_data,omitempty"`
}

// Volunteer is an identity and contact record. Volunteers are owned by the
// group they join: they are embedded in the group's member list and never
// persisted standalone.
type Volunteer struct {
	ID                 uuid.UUID          `json:"id"`
	UID                string             `json:"uid"` // display identifier, e.g. VOL123456ABCD
	Name               string             `json:"name" validate:"required,max=200"`
	Email              string             `json:"email" validate:"required,email,max=255"`
	Phone              string             `json:"phone" validate:"required,max=20"`
	JoinedAt           time.Time          `json:"joined_at"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	GovernmentID       *GovernmentID      `json:"government_id,omitempty"`
}

// FullyVerified reports whether all three verification stages have passed.
func (v *Volunteer) FullyVerified() bool {
	return v.VerificationStatus.Mobile && v.VerificationStatus.Email && v.VerificationStatus.GovernmentID
}
