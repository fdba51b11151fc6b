// Package error defines domain-specific errors for the Health Tracker application.
package error

import "errors"

// Record domain errors, shared by sleep, exercise, and diet records.
var (
	// ErrRecordNotFound is returned when a record is not found in the system.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnauthorizedRecordAccess is returned when a record belongs to another user.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrWakeBeforeSleep is returned when a sleep session ends before it starts.
	ErrWakeBeforeSleep = errors.New("wake-up time must be after sleep time")

	// ErrOverlappingSleep is returned when a sleep session overlaps an existing one.
	ErrOverlappingSleep = errors.New("sleep session overlaps an existing record")

	// ErrInvalidExerciseType is returned when the exercise type is unknown.
	ErrInvalidExerciseType = errors.New("invalid exercise type")

	// ErrInvalidDuration is returned when a duration is zero or negative.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrManualCaloriesRequired is returned when an "other" exercise has no calorie value.
	ErrManualCaloriesRequired = errors.New("calories burned must be provided for this exercise type")

	// ErrUnknownFood is returned when a food name is not in the catalog.
	ErrUnknownFood = errors.New("unknown food")

	// ErrInvalidMealType is returned when the meal type is unknown.
	ErrInvalidMealType = errors.New("invalid meal type")

	// ErrZeroCalories is returned when a diet entry computes to zero calories.
	ErrZeroCalories = errors.New("diet entry must have positive calories")
)

// SleepErrorCode defines error codes for sleep record errors.
// Format: SLP-XXYYYY where XX is category and YYYY is specific error.
type SleepErrorCode string

const (
	ErrCodeSleepNotFound     SleepErrorCode = "SLP-010001"
	ErrCodeWakeBeforeSleep   SleepErrorCode = "SLP-010002"
	ErrCodeOverlappingSleep  SleepErrorCode = "SLP-010003"
	ErrCodeSleepUnauthorized SleepErrorCode = "SLP-010004"
)

// ExerciseErrorCode defines error codes for exercise record errors.
// Format: EXR-XXYYYY where XX is category and YYYY is specific error.
type ExerciseErrorCode string

const (
	ErrCodeExerciseNotFound     ExerciseErrorCode = "EXR-010001"
	ErrCodeInvalidExerciseType  ExerciseErrorCode = "EXR-010002"
	ErrCodeInvalidDuration      ExerciseErrorCode = "EXR-010003"
	ErrCodeManualCalories       ExerciseErrorCode = "EXR-010004"
	ErrCodeExerciseUnauthorized ExerciseErrorCode = "EXR-010005"
)

// DietErrorCode defines error codes for diet record errors.
// Format: DIT-XXYYYY where XX is category and YYYY is specific error.
type DietErrorCode string

const (
	ErrCodeDietNotFound     DietErrorCode = "DIT-010001"
	ErrCodeUnknownFood      DietErrorCode = "DIT-010002"
	ErrCodeInvalidMealType  DietErrorCode = "DIT-010003"
	ErrCodeZeroCalories     DietErrorCode = "DIT-010004"
	ErrCodeDietUnauthorized DietErrorCode = "DIT-010005"
)

// RecordError represents a record error with code and message. Code holds one
// of the SleepErrorCode, ExerciseErrorCode, or DietErrorCode values.
type RecordError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewSleepError creates a RecordError for the sleep family.
func NewSleepError(code SleepErrorCode, message string, err error) *RecordError {
	return &RecordError{Code: string(code), Message: message, Err: err}
}

// NewExerciseError creates a RecordError for the exercise family.
func NewExerciseError(code ExerciseErrorCode, message string, err error) *RecordError {
	return &RecordError{Code: string(code), Message: message, Err: err}
}

// NewDietError creates a RecordError for the diet family.
func NewDietError(code DietErrorCode, message string, err error) *RecordError {
	return &RecordError{Code: string(code), Message: message, Err: err}
}
