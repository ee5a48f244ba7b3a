package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this group"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error tied to a specific field so
// the UI can surface the message next to the failing input rather than as a
// generic banner.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DeliveryError represents a failure to deliver an OTP through an out-of-band
// channel. It is a distinct outcome from a code mismatch: the code was never
// sent, so the user should retry the send, not the entry.
type DeliveryError struct {
	Channel string // "sms" or "email"
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver %s OTP: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrDepartmentNotFound   = &NotFoundError{Entity: "department"}
	ErrSPOCNotFound         = &NotFoundError{Entity: "SPOC"}
	ErrVerificationNotFound = &NotFoundError{Entity: "verification session"}
)

// Already Exists Errors
var (
	ErrDuplicateEmail   = &AlreadyExistsError{Entity: "email", Context: "in this group"}
	ErrDepartmentExists = &AlreadyExistsError{Entity: "department", Context: "with this name"}
	ErrSPOCExists       = &AlreadyExistsError{Entity: "SPOC", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrInvalidCode            = errors.New("invalid group code")
	ErrGroupFull              = errors.New("group has reached its member capacity")
	ErrOtpMismatch            = errors.New("submitted OTP does not match the issued OTP")
	ErrOtpNotRequested        = errors.New("no OTP has been requested for this stage")
	ErrIDVerificationFailed   = errors.New("government ID verification failed")
	ErrInvalidIDType          = errors.New("unsupported government ID type")
	ErrLeaderNotVerified      = errors.New("group leader has not completed verification")
	ErrMemberNotVerified      = errors.New("volunteer has not completed verification")
	ErrVerificationIncomplete = errors.New("verification session is not completed")
	ErrVerificationCompleted  = errors.New("verification session is already completed")
	ErrWrongVerificationStage = errors.New("operation is not valid in the current verification stage")
	ErrCodeAllocationFailed   = errors.New("could not allocate a unique join code")
	ErrInvalidCapacity        = errors.New("group capacity must be between 5 and 10")
	ErrDepartmentHasSPOCs     = errors.New("department still has SPOCs assigned")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDeliveryError creates a new DeliveryError for the given channel
func NewDeliveryError(channel string, err error) error {
	return &DeliveryError{Channel: channel, Err: err}
}
