// Package error defines domain-specific errors for the Health Tracker application.
package error

import "errors"

// Advice domain errors.
var (
	// ErrAdviceUnavailable is returned when the AI advice service cannot produce a result.
	ErrAdviceUnavailable = errors.New("advice service unavailable")

	// ErrAdviceNotConfigured is returned when no API key is configured for the advice service.
	ErrAdviceNotConfigured = errors.New("advice service not configured")
)

// AdviceErrorCode defines error codes for advice errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Service errors (01XXXX)
	ErrCodeAdviceUnavailable   AdviceErrorCode = "ADV-010001"
	ErrCodeAdviceNotConfigured AdviceErrorCode = "ADV-010002"
	ErrCodeAdviceRateLimited   AdviceErrorCode = "ADV-010003"
	ErrCodeAdviceTimeout       AdviceErrorCode = "ADV-010004"
)

// AdviceError represents an advice error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
