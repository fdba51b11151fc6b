// Package error defines domain-specific errors for the Health Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidSleepTarget is returned when the sleep target is outside 0-24 hours.
	ErrInvalidSleepTarget = errors.New("sleep target must be between 0 and 24 hours")

	// ErrInvalidCalorieTarget is returned when the calorie intake target is negative.
	ErrInvalidCalorieTarget = errors.New("calorie intake target must not be negative")

	// ErrInvalidGoalType is returned when the exercise goal type is unknown.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidTargetValue is returned when the target value is zero or negative.
	ErrInvalidTargetValue = errors.New("target value must be positive")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidSleepTarget     GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCalorieTarget   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalType        GoalErrorCode = "GOL-010004"
	ErrCodeInvalidTargetValue     GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
