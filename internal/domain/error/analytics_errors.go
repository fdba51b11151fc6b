// Package error defines domain-specific errors for the Health Tracker application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInsufficientData is returned when a computation needs more records
	// than the user has. Distinct from an empty result: callers can tell
	// "no signal" apart from "not enough data to tell".
	ErrInsufficientData = errors.New("insufficient data")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Insufficient data errors (01XXXX)
	ErrCodeInsufficientSleepData    AnalyticsErrorCode = "ANL-010001"
	ErrCodeInsufficientExerciseData AnalyticsErrorCode = "ANL-010002"
	ErrCodeInsufficientMatchedDays  AnalyticsErrorCode = "ANL-010003"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsInsufficientData reports whether err stems from too few records.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
